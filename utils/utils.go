package utils

import "qrtable/constants"

func CheckVersion(version int) bool {
	return version >= constants.MIN_VERSION && version <= constants.MAX_VERSION
}

func Contains(slice []string, item string) bool {
	for _, a := range slice {
		if a == item {
			return true
		}
	}
	return false
}
