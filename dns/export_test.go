package dns

// SetResolvConfPath overrides the resolv.conf location and returns a function restoring it.
func SetResolvConfPath(p string) (restore func()) {
	old := resolvConfPath
	resolvConfPath = p
	return func() { resolvConfPath = old }
}

// NameServerAddr returns the nameserver address used for direct queries.
func (r *Resolver) NameServerAddr() (string, error) { return r.nameserver() }
