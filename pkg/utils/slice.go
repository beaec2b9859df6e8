package utils

// FilterSlice maps src through fn, dropping elements where fn reports false.
func FilterSlice[T any, R any](src []T, fn func(T) (R, bool)) []R {
	out := make([]R, 0, len(src))
	for _, item := range src {
		if r, ok := fn(item); ok {
			out = append(out, r)
		}
	}
	return out
}
