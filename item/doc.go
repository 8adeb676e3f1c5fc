// Package item implements the map item records: one Go type per item variant,
// all sharing the Base header fields, and the codec that reads and writes
// them.
//
// Item is a sealed interface. Only the types in this package implement it,
// and New maps every format.ItemType to its variant, so a new item type has a
// single place to be registered.
//
// # Wire Layout
//
// An item record is the 54-byte section.ItemHeader followed by the variant
// body. Body fields are fixed-width little-endian values, tokens (u64),
// counted sequences (u32 count + elements) and length-prefixed strings. A
// Compound body nests full item records.
//
// # Decoding
//
//	r := encoding.NewReader(data)
//	it, err := item.DecodeItem(r)
//	if err != nil {
//	    return err
//	}
//	if p, ok := it.(*item.Prefab); ok {
//	    fmt.Println(p.Model, len(p.NodeUIDs))
//	}
//
// # Encoding
//
//	w := encoding.NewWriter()
//	defer w.Release()
//	if err := item.EncodeItem(w, prefab); err != nil {
//	    return err
//	}
package item
