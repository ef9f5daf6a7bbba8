// core/collections/partition.go
package collections

// Partition splits items into the ones passing the test and the ones
// failing it, preserving relative order. Single pass; the test is assumed
// cheap relative to the input size.
func Partition[T any](items []T, test func(T) bool) (pass, fail []T) {
	for _, item := range items {
		if test(item) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}
