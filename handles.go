package glbind

// Sync is an opaque GLsync handle. It is an address-sized value owned by the
// driver and is never dereferenced.
type Sync uintptr

// IsZero reports whether s is the null sync object.
func (s Sync) IsZero() bool { return s == 0 }

// DrawArraysIndirectCommand has the layout glDrawArraysIndirect reads.
type DrawArraysIndirectCommand struct {
	Count         uint32
	InstanceCount uint32
	First         uint32
	BaseInstance  uint32
}

// DrawElementsIndirectCommand has the layout glDrawElementsIndirect reads.
type DrawElementsIndirectCommand struct {
	Count         uint32
	InstanceCount uint32
	FirstIndex    uint32
	BaseVertex    int32
	BaseInstance  uint32
}

// ActiveUniform describes one active uniform of a program.
type ActiveUniform struct {
	Name string
	Size int32
	Type uint32
}

// DebugMessage is one entry from the debug output log.
type DebugMessage struct {
	Source   uint32
	Type     uint32
	ID       uint32
	Severity uint32
	Message  string
}
