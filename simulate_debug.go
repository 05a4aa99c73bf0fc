//go:build pagereplace_debug

package pagereplace

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
