package item

import (
	"github.com/arloliu/mapitem/encoding"
	"github.com/arloliu/mapitem/format"
	"github.com/arloliu/mapitem/token"
)

// Trigger fires its actions when a vehicle enters the polygon of its nodes.
type Trigger struct {
	Base          `yaml:",inline"`
	Tags          []token.Token   `yaml:"tags,omitempty,flow"`
	NodeUIDs      []uint64        `yaml:"node_uids,omitempty,flow"`
	Actions       []TriggerAction `yaml:"actions,omitempty"`
	Range         float32         `yaml:"range"`
	ResetDelay    float32         `yaml:"reset_delay"`
	ResetDistance float32         `yaml:"reset_distance"`
}

func (*Trigger) Kind() format.ItemType { return format.ItemTrigger }

func (t *Trigger) decodeBody(r *encoding.Reader, _ Codec) {
	t.Tags = encoding.ReadTokens(r, "trigger.tags")
	t.NodeUIDs = encoding.ReadUint64s(r, "trigger.node_uids")
	t.Actions = readElems[TriggerAction](r, "trigger.actions", triggerActionMinSize)
	t.Range = r.Float32("trigger.range")
	t.ResetDelay = r.Float32("trigger.reset_delay")
	t.ResetDistance = r.Float32("trigger.reset_distance")
}

func (t *Trigger) encodeBody(w *encoding.Writer, _ Codec) {
	encoding.WriteTokens(w, "trigger.tags", t.Tags)
	encoding.WriteUint64s(w, "trigger.node_uids", t.NodeUIDs)
	writeElems(w, "trigger.actions", t.Actions)
	w.Float32(t.Range)
	w.Float32(t.ResetDelay)
	w.Float32(t.ResetDistance)
}

// Trajectory is a scripted AI vehicle path.
type Trajectory struct {
	Base        `yaml:",inline"`
	NodeUIDs    []uint64         `yaml:"node_uids,omitempty,flow"`
	AccessRule  uint32           `yaml:"access_rule"`
	Rules       []TrajectoryRule `yaml:"rules,omitempty"`
	Checkpoints []Checkpoint     `yaml:"checkpoints,omitempty"`
	Tags        []token.Token    `yaml:"tags,omitempty,flow"`
}

func (*Trajectory) Kind() format.ItemType { return format.ItemTrajectory }

func (t *Trajectory) decodeBody(r *encoding.Reader, _ Codec) {
	t.NodeUIDs = encoding.ReadUint64s(r, "trajectory.node_uids")
	t.AccessRule = r.Uint32("trajectory.access_rule")
	t.Rules = readElems[TrajectoryRule](r, "trajectory.rules", trajectoryRuleMin)
	t.Checkpoints = readElems[Checkpoint](r, "trajectory.checkpoints", checkpointSize)
	t.Tags = encoding.ReadTokens(r, "trajectory.tags")
}

func (t *Trajectory) encodeBody(w *encoding.Writer, _ Codec) {
	encoding.WriteUint64s(w, "trajectory.node_uids", t.NodeUIDs)
	w.Uint32(t.AccessRule)
	writeElems(w, "trajectory.rules", t.Rules)
	writeElems(w, "trajectory.checkpoints", t.Checkpoints)
	encoding.WriteTokens(w, "trajectory.tags", t.Tags)
}

// CameraPath is a scripted camera flight along its nodes.
type CameraPath struct {
	Base      `yaml:",inline"`
	Tags      []token.Token    `yaml:"tags,omitempty,flow"`
	NodeUIDs  []uint64         `yaml:"node_uids,omitempty,flow"`
	Keyframes []CameraKeyframe `yaml:"keyframes,omitempty"`
}

func (*CameraPath) Kind() format.ItemType { return format.ItemCameraPath }

func (c *CameraPath) decodeBody(r *encoding.Reader, _ Codec) {
	c.Tags = encoding.ReadTokens(r, "camera_path.tags")
	c.NodeUIDs = encoding.ReadUint64s(r, "camera_path.node_uids")
	c.Keyframes = readElems[CameraKeyframe](r, "camera_path.keyframes", cameraKeyframeSize)
}

func (c *CameraPath) encodeBody(w *encoding.Writer, _ Codec) {
	encoding.WriteTokens(w, "camera_path.tags", c.Tags)
	encoding.WriteUint64s(w, "camera_path.node_uids", c.NodeUIDs)
	writeElems(w, "camera_path.keyframes", c.Keyframes)
}

// Cutscene is a sequence of scripted actions played at a node.
type Cutscene struct {
	Base    `yaml:",inline"`
	Tags    []token.Token    `yaml:"tags,omitempty,flow"`
	NodeUID uint64           `yaml:"node_uid"`
	Actions []CutsceneAction `yaml:"actions,omitempty"`
}

func (*Cutscene) Kind() format.ItemType { return format.ItemCutscene }

func (c *Cutscene) decodeBody(r *encoding.Reader, _ Codec) {
	c.Tags = encoding.ReadTokens(r, "cutscene.tags")
	c.NodeUID = r.Uint64("cutscene.node_uid")
	c.Actions = readElems[CutsceneAction](r, "cutscene.actions", cutsceneActionMin)
}

func (c *Cutscene) encodeBody(w *encoding.Writer, _ Codec) {
	encoding.WriteTokens(w, "cutscene.tags", c.Tags)
	w.Uint64(c.NodeUID)
	writeElems(w, "cutscene.actions", c.Actions)
}
