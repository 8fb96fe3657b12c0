// Package flagx lets independent components pick their own flags out of
// os.Args without tripping over each other's definitions.
package flagx

import (
	"flag"
	"strings"
)

// DefaultEnvFile is read when no -env flag is given.
const DefaultEnvFile = ".env"

// FilterArgs keeps only the flags listed in allowed, together with their
// values. Both "-f value" and "-f=value" forms are recognized; a value is
// taken from the next argument only when it does not start with "-".
func FilterArgs(args []string, allowed []string) []string {
	known := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		known[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, found := strings.Cut(arg, "="); found && strings.HasPrefix(arg, "-") {
			if _, ok := known[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := known[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigFiles extracts the JSON config path (-c / -config) and the dotenv
// path (-env) from args. The JSON path is empty when not given; the dotenv
// path falls back to DefaultEnvFile.
func ConfigFiles(args []string) (jsonPath, envPath string) {
	fs := flag.NewFlagSet("config-files", flag.ContinueOnError)
	fs.StringVar(&jsonPath, "config", "", "path to JSON config file")
	fs.StringVar(&jsonPath, "c", "", "path to JSON config file (short)")
	fs.StringVar(&envPath, "env", DefaultEnvFile, "path to .env file")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config", "--config", "-env", "--env"}))

	return jsonPath, envPath
}
