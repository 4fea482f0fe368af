package scene

import "strings"

// ParseCustomVars splits the editor's "key:value;key2:value2" custom variable
// string. Entries without a colon map to an empty value; later keys win.
func ParseCustomVars(s string) map[string]string {
	out := make(map[string]string)
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, ":")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		out[key] = strings.TrimSpace(value)
	}
	return out
}

// EncodeCustomVars is the inverse of ParseCustomVars with keys in the given order.
func EncodeCustomVars(keys []string, vars map[string]string) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v, ok := vars[k]
		if !ok {
			continue
		}
		parts = append(parts, k+":"+v)
	}
	return strings.Join(parts, ";")
}
