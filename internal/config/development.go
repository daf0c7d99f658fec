package config

func Development() bool {
	development, ok := lookup("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
