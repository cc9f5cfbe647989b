package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func arg(i int) string { return "arg" + strconv.Itoa(i) }
func typ(i int) string { return "A" + strconv.Itoa(i) }
func fn(i int) string  { return "f" + strconv.Itoa(i) }

// typeParams renders the type parameter list of an arity-k combinator,
// e.g. "T, A0, A1 any".
func typeParams(count int) string {
	return "T, " + prefixedStrings("A", count) + " any"
}

// typeArgs renders the type argument list, e.g. "T, A0, A1".
func typeArgs(count int) string {
	return "T, " + prefixedStrings("A", count)
}

// argTypes renders the callback parameter types, e.g. "A0, A1".
func argTypes(count int) string {
	return prefixedStrings("A", count)
}

func arrayOf(count int, elem string) string {
	return "[" + strconv.Itoa(count) + "]" + elem
}

// futureParams renders "a0 Future[A0], a1 Future[A1]".
func futureParams(count int) string {
	parts := make([]string, count)
	for i := range parts {
		n := strconv.Itoa(i)
		parts[i] = "a" + n + " Future[A" + n + "]"
	}
	return strings.Join(parts, ", ")
}

// altFnParams renders "f0 func(A0) Future[T], f1 func(A1) Future[T]".
func altFnParams(count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = fn(i) + " func(" + typ(i) + ") Future[T]"
	}
	return strings.Join(parts, ", ")
}

// altFnInits renders "f0: f0, f1: f1".
func altFnInits(count int) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = fn(i) + ": " + fn(i)
	}
	return strings.Join(parts, ", ")
}

// fieldWidth is the struct field name column gofmt settles on for the
// generated types; "parents" is the widest name.
const fieldWidth = 8

func field(name, typ string) string {
	return "\t" + name + strings.Repeat(" ", fieldWidth-len(name)) + typ + "\n"
}
