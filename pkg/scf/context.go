package scf

// FallbackID is written to serialized objects when no input object carried an
// id attribute.
const FallbackID = "10400"

// RunContext collects document-level values picked up while flattening, for
// use when the merged plan is rebuilt: the shared network-element prefix, the
// default managed-object id and the first schema version seen. Each field is
// written at most once per run (first capture wins) and only read afterwards;
// the pipeline is single-threaded, so there is no locking.
type RunContext struct {
	rootPrefix string
	defaultID  string
	version    string
}

// NewRunContext returns an empty run context.
func NewRunContext() *RunContext {
	return &RunContext{}
}

// RootPrefix returns the shared prefix (the first two distName segments of
// the first identified object), or "" if nothing has been flattened yet.
func (c *RunContext) RootPrefix() string {
	return c.rootPrefix
}

// DefaultID returns the id attribute of the first object that carried one,
// falling back to FallbackID.
func (c *RunContext) DefaultID() string {
	if c.defaultID == "" {
		return FallbackID
	}
	return c.defaultID
}

// Version returns the version attribute of the first object that carried one,
// or "" if none did.
func (c *RunContext) Version() string {
	return c.version
}

func (c *RunContext) captureRootPrefix(prefix string) {
	if c.rootPrefix == "" {
		c.rootPrefix = prefix
	}
}

func (c *RunContext) captureDefaultID(id string) {
	if c.defaultID == "" {
		c.defaultID = id
	}
}

func (c *RunContext) captureVersion(version string) {
	if c.version == "" {
		c.version = version
	}
}
