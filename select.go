package glbind

// Select returns the catalogue entries the descriptor requires, in
// declaration order. It is pure: the same descriptor always yields the same
// list. Invalid descriptors fail before anything is selected.
func Select(d Descriptor) ([]*EntryPointSpec, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	out := make([]*EntryPointSpec, 0, numEntryPoints)
	for i := range catalog {
		if catalog[i].Available(d) {
			out = append(out, &catalog[i])
		}
	}
	return out, nil
}

// SelectNames is like Select but returns native names.
func SelectNames(d Descriptor) ([]string, error) {
	specs, err := Select(d)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.Name
	}
	return names, nil
}
