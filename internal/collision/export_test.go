package collision

// trackHash records name under h regardless of its real hash, which lets
// tests force a collision.
func (t *Tracker) trackHash(h uint64, name string) {
	t.names[h] = name
	t.order = append(t.order, name)
}
