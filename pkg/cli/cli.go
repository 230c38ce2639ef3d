// Package cli is a small command line framework.
// Handlers are plain structs, their exported fields are populated from flags and environment variables
// described in struct tags, in the same manner as an HTTP handler gets its request.
package cli

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strconv"
	"strings"

	"go.llib.dev/lazytake/pkg/env"
	"go.llib.dev/lazytake/pkg/errorkit"
)

const (
	// ExitCodeOK : Success
	ExitCodeOK = 0
	// ExitCodeError : General Error
	ExitCodeError = 1
	// ExitCodeBadRequest : Misuse of shell builtins or invalid command-line usage, often equated with a bad request.
	ExitCodeBadRequest = 2
)

const (
	ErrFlagMissing         errorkit.Error = "ErrFlagMissing"
	ErrFlagParseIssue      errorkit.Error = "ErrFlagParseIssue"
	ErrInvalidDefaultValue errorkit.Error = "ErrInvalidDefaultValue"
)

type Handler interface {
	ServeCLI(w Response, r *Request)
}

type Request struct {
	Args []string
	Body io.Reader

	ctx context.Context
}

func (r Request) Context() context.Context {
	if r.ctx != nil {
		return r.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of the request with its context changed to ctx.
func (r *Request) WithContext(ctx context.Context) *Request {
	cp := *r
	cp.ctx = ctx
	return &cp
}

type Response interface {
	ExitCode(n int)
	io.Writer
}

type ErrorWriter interface {
	Stderr() io.Writer
}

type HandlerFunc func(w Response, r *Request)

func (fn HandlerFunc) ServeCLI(w Response, r *Request) {
	fn(w, r)
}

// HelpSummary is implemented by handlers that can describe themselves in one line.
type HelpSummary interface {
	Summary() string
}

///////////////////////////////////////////////////////////////////////////////////////////////////

// Mux dispatches to a Handler by the first argument.
type Mux struct {
	m    map[string]Handler
	path string
}

func (m *Mux) Handle(name string, h Handler) {
	if m.m == nil {
		m.m = map[string]Handler{}
	}
	if _, ok := m.m[name]; ok {
		panic(fmt.Sprintf("The %q command already had a handler registered", name))
	}
	if _, _, err := structMetaFor(h); err != nil {
		panic(err.Error())
	}
	m.m[name] = h
}

func (m *Mux) ServeCLI(w Response, r *Request) {
	if len(r.Args) == 0 {
		w.ExitCode(ExitCodeBadRequest)
		m.help(errOut(w))
		return
	}
	name := r.Args[0]
	h, ok := m.m[name]
	if !ok {
		if isHelpFlag(name) {
			m.help(w)
			return
		}
		w.ExitCode(ExitCodeBadRequest)
		o := errOut(w)
		m.help(o)
		printfln(o, "command is unknown: "+name)
		return
	}
	sub := &Request{Args: r.Args[1:], Body: r.Body, ctx: r.ctx}
	serveCLI(h, w, sub, m.getPath()+" "+name)
}

func (m *Mux) help(w io.Writer) {
	printfln(w, "Usage: "+m.getPath()+" <command> [OPTION]...", "")
	printfln(w, helpCommands(m.m))
}

func (m *Mux) getPath() string {
	if m.path != "" {
		return m.path
	}
	return execName()
}

func isHelpFlag(v string) bool {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	err := fs.Parse([]string{v})
	return errors.Is(err, flag.ErrHelp)
}

///////////////////////////////////////////////////////////////////////////////////////////////////

// ServeCLI configures the handler from the request, then serves it.
// Flag and environment issues are answered with the usage and ExitCodeBadRequest.
func ServeCLI(h Handler, w Response, r *Request) {
	if h == nil {
		panic("nil cli.Handler")
	}
	if w == nil {
		panic("nil cli.Response")
	}
	if r == nil {
		panic("nil *cli.Request")
	}
	if _, ok := h.(*Mux); ok {
		h.ServeCLI(w, r)
		return
	}
	serveCLI(h, w, r, execName())
}

func serveCLI(h Handler, w Response, r *Request, path string) {
	handler, err := ConfigureHandler(h, r)
	if err != nil {
		var o io.Writer = w
		if !isHelp(err) {
			w.ExitCode(ExitCodeBadRequest)
			o = errOut(w)
		}
		printfln(o, Usage(h, path), "")
		if !isHelp(err) {
			printfln(o, err.Error())
		}
		return
	}
	handler.ServeCLI(w, r)
}

func HandleError(w Response, r *Request, err error) {
	if err == nil {
		return
	}
	w.ExitCode(ExitCodeError)
	fmt.Fprintf(errOut(w), "%s\n", err.Error())
}

// Main serves the handler with the process arguments and standard streams, then exits with the response's code.
func Main(ctx context.Context, h Handler) {
	var args []string
	if 1 < len(os.Args) {
		args = os.Args[1:]
	}
	var w stdResponse
	r := &Request{
		ctx:  ctx,
		Args: args,
		Body: os.Stdin,
	}
	ServeCLI(h, &w, r)
	os.Exit(w.Code)
}

// ConfigureHandler returns a copy of a struct handler with its tagged fields populated.
// The parsed flags are removed from r.Args.
func ConfigureHandler[H Handler](h H, r *Request) (H, error) {
	meta, ok, err := structMetaFor(h)
	if err != nil || !ok {
		return h, err
	}

	ptr := reflect.New(reflect.TypeOf(h))
	ptr.Elem().Set(reflect.ValueOf(h))
	val := ptr.Elem()
	if val.Kind() == reflect.Pointer {
		cp := reflect.New(val.Type().Elem())
		cp.Elem().Set(val.Elem())
		val.Set(cp)
		val = cp.Elem()
	}

	if err := env.ReflectLoad(val.Addr()); err != nil {
		return h, err
	}

	var flagSetOutput bytes.Buffer
	var flagSet = flag.NewFlagSet("", flag.ContinueOnError)
	flagSet.Usage = func() {}
	flagSet.SetOutput(&flagSetOutput)

	var values = make([]*flagValue, len(meta.Flags))
	for i, f := range meta.Flags {
		values[i] = &flagValue{Type: f.StructField.Type}
		for _, n := range f.Names {
			flagSet.Var(values[i], n, f.Desc)
		}
	}

	if err := flagSet.Parse(r.Args); err != nil {
		return h, err
	}
	r.Args = flagSet.Args()

	for i, f := range meta.Flags {
		if err := f.set(val, *values[i]); err != nil {
			return h, err
		}
	}
	return ptr.Elem().Interface().(H), nil
}

///////////////////////////////////////////////////////////////////////////////////////////////////

type structMeta struct {
	Flags []structFlag
}

type structFlag struct {
	StructField reflect.StructField

	Default    string
	HasDefault bool
	DefVal     reflect.Value

	Names    []string
	Desc     string
	Required bool
}

func structMetaFor(h Handler) (structMeta, bool, error) {
	v := reflect.ValueOf(h)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return structMeta{}, false, nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return structMeta{}, false, nil
	}
	var m structMeta
	for i, T := 0, v.Type(); i < T.NumField(); i++ {
		sf := T.Field(i)
		if sf.Anonymous || !sf.IsExported() {
			continue
		}
		f, ok, err := scanForFlag(sf)
		if err != nil {
			return structMeta{}, false, err
		}
		if ok {
			m.Flags = append(m.Flags, f)
		}
	}
	return m, true, nil
}

func scanForFlag(sf reflect.StructField) (structFlag, bool, error) {
	names, ok := sf.Tag.Lookup("flag")
	if !ok {
		return structFlag{}, false, nil
	}
	f := structFlag{StructField: sf, Names: splitFlag(names)}
	if def, ok := sf.Tag.Lookup("default"); ok {
		val, err := env.ParseReflect(sf.Type, def)
		if err != nil {
			return f, true, ErrInvalidDefaultValue.F("%s field got %q as default value, but it is not interpretable as %s", sf.Name, def, sf.Type.String())
		}
		f.Default, f.DefVal, f.HasDefault = def, val, true
	}
	for _, tag := range []string{"desc", "description"} {
		if v, ok := sf.Tag.Lookup(tag); ok {
			f.Desc = v
			break
		}
	}
	if req, ok := sf.Tag.Lookup("required"); ok && !f.HasDefault {
		isRequired, err := strconv.ParseBool(req)
		if err != nil {
			return f, true, err
		}
		f.Required = isRequired
	}
	return f, true, nil
}

func splitFlag(flag string) []string {
	var names []string
	for _, name := range strings.Split(flag, ",") {
		name = strings.TrimLeft(strings.TrimSpace(name), "-")
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (sf structFlag) set(Struct reflect.Value, value flagValue) error {
	name := strings.Join(sf.Names, "/")
	field := Struct.FieldByIndex(sf.StructField.Index)
	if !value.IsSet {
		if keys, ok := sf.StructField.Tag.Lookup("env"); ok && env.Present(keys) {
			return nil
		}
		if sf.HasDefault {
			field.Set(sf.DefVal)
			return nil
		}
		if sf.Required {
			return ErrFlagMissing.F("%s flag is required", name)
		}
		return nil
	}
	rval, err := env.ParseReflect(field.Type(), value.Raw)
	if err != nil {
		return ErrFlagParseIssue.F("%s (%s) encountered a parsing error with the value of: %q", name, field.Type().String(), value.Raw)
	}
	field.Set(rval)
	return nil
}

type flagValue struct {
	Raw   string
	IsSet bool
	Type  reflect.Type
}

func (v *flagValue) String() string { return v.Raw }

func (v *flagValue) IsBoolFlag() bool { return v.Type != nil && v.Type.Kind() == reflect.Bool }

func (v *flagValue) Set(raw string) error {
	v.Raw = raw
	v.IsSet = true
	return nil
}

///////////////////////////////////////////////////////////////////////////////////////////////////

func execName() string {
	if ep, err := os.Executable(); err == nil {
		return filepath.Base(ep)
	}
	if 0 < len(os.Args) {
		return os.Args[0]
	}
	return ""
}

func printfln(w io.Writer, msg ...string) {
	_, _ = w.Write([]byte(strings.Join(msg, lineSeparator) + lineSeparator))
}

var lineSeparator = func() string {
	switch runtime.GOOS {
	case "windows":
		return "\r\n"
	default:
		return "\n"
	}
}()

func errOut(w Response) io.Writer {
	if rwe, ok := w.(ErrorWriter); ok {
		if o := rwe.Stderr(); o != nil {
			return o
		}
	}
	return w
}

type stdResponse struct {
	Code int
}

func (rr *stdResponse) ExitCode(n int)                    { rr.Code = n }
func (rr *stdResponse) Stderr() io.Writer                 { return os.Stderr }
func (rr *stdResponse) Write(p []byte) (n int, err error) { return os.Stdout.Write(p) }

// ResponseRecorder is a Response for testing handlers.
type ResponseRecorder struct {
	Code int
	Out  bytes.Buffer
	Err  bytes.Buffer
}

func (rr *ResponseRecorder) ExitCode(n int)                    { rr.Code = n }
func (rr *ResponseRecorder) Stderr() io.Writer                 { return &rr.Err }
func (rr *ResponseRecorder) Write(p []byte) (n int, err error) { return rr.Out.Write(p) }
