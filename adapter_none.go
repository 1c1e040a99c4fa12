//go:build !((amd64 || arm64) && (windows || !cgo))

package glbind

// DefaultAdapter reports that no native adapter is built for this target.
// goffi needs amd64 or arm64, and CGO_ENABLED=0 outside Windows.
// Supply one with WithAdapter.
func DefaultAdapter() (Adapter, error) {
	return nil, ErrNoNativeAdapter
}
