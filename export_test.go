package glbind

// WithScratchPool exposes withScratchPool to external tests.
var WithScratchPool = withScratchPool
