package client

import "strconv"

const (
	opNew     = "new"
	opExecute = "execute"
)

// requiredOptions lists, per operation, the fields that must be present.
// The order here is the order in which missing fields are reported.
var requiredOptions = map[string][]string{
	opNew:     {"username", "password", "host", "port", "failure_email"},
	opExecute: {"command"},
}

// checkRequiredOptions returns a *MissingConfigurationError naming every
// required field of op whose value in values is empty.
func checkRequiredOptions(op string, values map[string]string) error {
	var missing []string

	for _, name := range requiredOptions[op] {
		if values[name] == "" {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return &MissingConfigurationError{Fields: missing}
	}

	return nil
}

func (c Config) optionValues() map[string]string {
	port := ""
	if c.Port != 0 {
		port = strconv.Itoa(c.Port)
	}

	return map[string]string{
		"username":      c.Username,
		"password":      c.Password,
		"host":          c.Host,
		"port":          port,
		"failure_email": c.FailureEmail,
	}
}
