package metrics

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func orUnknown(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
