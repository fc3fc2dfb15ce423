package descriptor

// VolumeDescriptorSet is the ordered sequence of descriptors recorded from sector 16 onwards. A complete set ends
// with exactly one terminator.
type VolumeDescriptorSet []VolumeDescriptor

// Primary returns the first Primary Volume Descriptor, or nil.
func (s VolumeDescriptorSet) Primary() *PrimaryVolumeDescriptor {
	for _, vd := range s {
		if pvd, ok := vd.(*PrimaryVolumeDescriptor); ok {
			return pvd
		}
	}
	return nil
}

// BootRecords returns all boot records in recorded order.
func (s VolumeDescriptorSet) BootRecords() []*BootRecordDescriptor {
	var out []*BootRecordDescriptor
	for _, vd := range s {
		if br, ok := vd.(*BootRecordDescriptor); ok {
			out = append(out, br)
		}
	}
	return out
}

// Supplementary returns all supplementary descriptors in recorded order.
func (s VolumeDescriptorSet) Supplementary() []*SupplementaryVolumeDescriptor {
	var out []*SupplementaryVolumeDescriptor
	for _, vd := range s {
		if svd, ok := vd.(*SupplementaryVolumeDescriptor); ok {
			out = append(out, svd)
		}
	}
	return out
}

// Terminated reports whether the set ends with a terminator.
func (s VolumeDescriptorSet) Terminated() bool {
	if len(s) == 0 {
		return false
	}
	_, ok := s[len(s)-1].(*VolumeDescriptorSetTerminator)
	return ok
}

// Kinds returns the type of every descriptor in order.
func (s VolumeDescriptorSet) Kinds() []VolumeDescriptorType {
	out := make([]VolumeDescriptorType, len(s))
	for i, vd := range s {
		out[i] = vd.Type()
	}
	return out
}
