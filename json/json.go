// Wrap json library to control encoding.

package json

import (
	"github.com/Velocidex/json"
)

func Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func MustMarshalString(v interface{}) string {
	result, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(result)
}

func Unmarshal(b []byte, v interface{}) error {
	return json.Unmarshal(b, v)
}
