package templates

import (
	qt "github.com/valyala/quicktemplate"
)

const header = `// Code generated by cmd/codegen. DO NOT EDIT.

package future

`

// CombinatorsGen renders the BindN/AltN combinator API for arities
// 1..maxArity as a single Go source file.
func CombinatorsGen(maxArity int) string {
	bb := qt.AcquireByteBuffer()
	defer qt.ReleaseByteBuffer(bb)
	w := qt.AcquireWriter(bb)
	defer qt.ReleaseWriter(w)

	q := w.N()
	q.S(header)
	for k := 1; k <= maxArity; k++ {
		writeBind(q, k)
		writeAlt(q, k)
	}

	out := bb.B
	for len(out) > 1 && out[len(out)-1] == '\n' && out[len(out)-2] == '\n' {
		out = out[:len(out)-1]
	}
	return string(out)
}

func writeBind(q *qt.QWriter, k int) {
	ta := typeArgs(k)

	q.S("type bind")
	q.D(k)
	q.S("[" + typeParams(k) + "] struct {\n")
	q.S(field("out", "node[T]"))
	q.S(field("fn", "func("+argTypes(k)+") Future[T]"))
	q.S(field("parents", arrayOf(k, "releasable")))
	q.S(field("ready", arrayOf(k, "bool")))
	for i := 0; i < k; i++ {
		q.S(field(arg(i), typ(i)))
	}
	q.S("}\n\n")

	for i := 0; i < k; i++ {
		q.S("func (b *bind")
		q.D(k)
		q.S("[" + ta + "]) set")
		q.D(i)
		q.S("(x " + typ(i) + ") {\n")
		q.S("\tb." + arg(i) + " = x\n")
		q.S("\tb.done(")
		q.D(i)
		q.S(")\n}\n\n")
	}

	q.S("func (b *bind")
	q.D(k)
	q.S("[" + ta + "]) done(i int) {\n")
	q.S("\tb.ready[i] = true\n")
	q.S("\tif p := b.parents[i]; p != nil {\n")
	q.S("\t\tp.release()\n")
	q.S("\t\tb.parents[i] = nil\n")
	q.S("\t}\n")
	q.S("\tb.fire()\n")
	q.S("}\n\n")

	q.S("func (b *bind")
	q.D(k)
	q.S("[" + ta + "]) fire() {\n")
	q.S("\tfor _, ok := range b.ready {\n")
	q.S("\t\tif !ok {\n")
	q.S("\t\t\treturn\n")
	q.S("\t\t}\n")
	q.S("\t}\n")
	q.S("\tb.out.propagate(b.fn(" + prefixedStrings("b.arg", k) + "))\n")
	q.S("}\n\n")

	q.S("func Bind")
	q.D(k)
	q.S("[" + typeParams(k) + "](" + futureParams(k) + ", fn func(" + argTypes(k) + ") Future[T]) Future[T] {\n")
	q.S("\tdefer enter()()\n")
	q.S("\tb := &bind")
	q.D(k)
	q.S("[" + ta + "]{fn: fn}\n")
	for i := 0; i < k; i++ {
		q.S("\tb.parents[")
		q.D(i)
		q.S("] = watch(a")
		q.D(i)
		q.S(", &b.out, b.set")
		q.D(i)
		q.S(")\n")
		q.S("\tif b.parents[")
		q.D(i)
		q.S("] == nil {\n")
		q.S("\t\tb." + arg(i) + " = a")
		q.D(i)
		q.S(".Get()\n")
		q.S("\t\tb.ready[")
		q.D(i)
		q.S("] = true\n")
		q.S("\t}\n")
	}
	q.S("\tout := attach(&b.out)\n")
	q.S("\tb.fire()\n")
	q.S("\treturn out\n")
	q.S("}\n\n")
}

func writeAlt(q *qt.QWriter, k int) {
	ta := typeArgs(k)

	q.S("type alt")
	q.D(k)
	q.S("[" + typeParams(k) + "] struct {\n")
	q.S(field("out", "node[T]"))
	for i := 0; i < k; i++ {
		q.S(field(fn(i), "func("+typ(i)+") Future[T]"))
	}
	q.S(field("parents", arrayOf(k, "releasable")))
	q.S(field("fired", "bool"))
	q.S("}\n\n")

	for i := 0; i < k; i++ {
		q.S("func (a *alt")
		q.D(k)
		q.S("[" + ta + "]) set")
		q.D(i)
		q.S("(x " + typ(i) + ") {\n")
		q.S("\tif a.fired {\n")
		q.S("\t\treturn\n")
		q.S("\t}\n")
		q.S("\ta.win()\n")
		q.S("\ta.out.propagate(a." + fn(i) + "(x))\n")
		q.S("}\n\n")
	}

	q.S("func (a *alt")
	q.D(k)
	q.S("[" + ta + "]) win() {\n")
	q.S("\ta.fired = true\n")
	q.S("\tfor i, p := range a.parents {\n")
	q.S("\t\tif p != nil {\n")
	q.S("\t\t\tp.release()\n")
	q.S("\t\t\ta.parents[i] = nil\n")
	q.S("\t\t}\n")
	q.S("\t}\n")
	q.S("}\n\n")

	q.S("func Alt")
	q.D(k)
	q.S("[" + typeParams(k) + "](" + futureParams(k) + ", " + altFnParams(k) + ") Future[T] {\n")
	q.S("\tdefer enter()()\n")
	q.S("\ta := &alt")
	q.D(k)
	q.S("[" + ta + "]{" + altFnInits(k) + "}\n")
	for i := 0; i < k; i++ {
		q.S("\ta.parents[")
		q.D(i)
		q.S("] = watch(a")
		q.D(i)
		q.S(", &a.out, a.set")
		q.D(i)
		q.S(")\n")
	}
	q.S("\tout := attach(&a.out)\n")
	for i := 0; i < k; i++ {
		if i == 0 {
			q.S("\tif a.parents[")
		} else {
			q.S("\t} else if a.parents[")
		}
		q.D(i)
		q.S("] == nil {\n")
		q.S("\t\ta.set")
		q.D(i)
		q.S("(a")
		q.D(i)
		q.S(".Get())\n")
	}
	q.S("\t}\n")
	q.S("\treturn out\n")
	q.S("}\n\n")
}
