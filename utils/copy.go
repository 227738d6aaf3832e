package utils

func CopySlice(in []string) []string {
	result := make([]string, len(in))
	copy(result, in)
	return result
}
