package util

// RemoveDuplicateStrings keeps the first occurrence of each string in order,
// dropping blanks and anything in ignoreList
func RemoveDuplicateStrings(strings []string, ignoreList []string) []string {
	presentStrings := make(map[string]bool)
	var list []string

	for _, ignoreString := range ignoreList {
		presentStrings[ignoreString] = true
	}

	for _, item := range strings {
		if _, value := presentStrings[item]; !value && item != "" {
			presentStrings[item] = true
			list = append(list, item)
		}
	}
	return list
}
