package util

// Sep separates the logical prefix from the item key in storage keys.
const Sep = ":"

// StorageKey returns "<prefix>:<key>". Colons inside prefix or key are not escaped,
// so "a:b"+"c" and "a"+"b:c" collide; callers pick prefixes that cannot.
func StorageKey(prefix, key string) string {
	return prefix + Sep + key
}
