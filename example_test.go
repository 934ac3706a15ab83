package cowbird_test

import (
	"fmt"

	"github.com/hansoksendahl/cowbird/gramdef"
	"github.com/hansoksendahl/cowbird/parser"
)

func Example() {
	input := "host = localhost\nport = 8080\ndebug = on"

	def := gramdef.Def{
		"config": {"<line>", `<this> \n <line>`},
		"line": {
			`[a-z]+ = [^\n]+`, func(args []any, binding any) (any, error) {
				binding.(map[string]string)[args[0].(string)] = args[2].(string)
				return nil, nil
			},
		},
	}
	g, e := gramdef.Compile(def, "config")
	if e != nil {
		fmt.Println(e)
		return
	}

	settings := map[string]string{}
	_, e = parser.New(g).ParseString(input, settings)
	if e == nil {
		fmt.Println(settings)
	} else {
		fmt.Println(e)
	}
	// Output:
	// map[debug:on host:localhost port:8080]
}
