package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pthm/hxclient"
	"github.com/pthm/hxclient/lib/dom"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "resolve":
		if err := runResolve(args, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "dispatch":
		if err := runDispatch(context.Background(), args, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("hxclient version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`hxclient - htmx request dispatch and swap engine

Usage:
  hxclient <command> [options] <page> <selector>

Commands:
  resolve     Print the request an element would dispatch
  dispatch    Dispatch an element and print the resulting document
  version     Print version
  help        Show this help

The page is a file path or an http(s) URL. The selector picks the element.

Options:
  -config <file>     YAML config (base_url, timeout, headers, log)
  -location <url>    Location of a page read from a file

Examples:
  hxclient resolve page.html '#like'
  hxclient dispatch -location http://localhost:8080/ page.html '#like'
  hxclient dispatch -config hx.yaml http://localhost:8080/items 'form'`)
}

// invocation is the parsed command line shared by resolve and dispatch.
type invocation struct {
	cfg      Config
	page     string
	selector string
	location string
}

func parseArgs(name string, args []string) (invocation, error) {
	var inv invocation
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("config", "", "YAML config file")
	fs.StringVar(&inv.location, "location", "", "location of a page read from a file")
	if err := fs.Parse(args); err != nil {
		return inv, err
	}
	if fs.NArg() != 2 {
		return inv, fmt.Errorf("%s: want <page> <selector>, got %d arguments", name, fs.NArg())
	}
	inv.page, inv.selector = fs.Arg(0), fs.Arg(1)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return inv, err
	}
	inv.cfg = cfg
	if inv.location == "" {
		inv.location = cfg.BaseURL
	}
	return inv, nil
}

// loadPage parses the page and finds the selected element.
func loadPage(ctx context.Context, client *http.Client, inv invocation) (*dom.Document, *dom.Element, error) {
	var (
		doc *dom.Document
		err error
	)
	if isURL(inv.page) {
		doc, err = fetchPage(ctx, client, inv.page)
	} else {
		doc, err = readPage(inv.page, inv.location)
	}
	if err != nil {
		return nil, nil, err
	}

	el, err := doc.Query(inv.selector)
	if err != nil {
		return nil, nil, err
	}
	if el == nil {
		return nil, nil, fmt.Errorf("no element matches %q", inv.selector)
	}
	return doc, el, nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func readPage(path, location string) (*dom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dom.Parse(f, location)
}

func fetchPage(ctx context.Context, client *http.Client, u string) (*dom.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch page: %s", resp.Status)
	}
	return dom.Parse(resp.Body, resp.Request.URL.String())
}

// jobView is the YAML shape printed by resolve.
type jobView struct {
	Method    string   `yaml:"method"`
	URL       string   `yaml:"url"`
	Body      string   `yaml:"body,omitempty"`
	Target    string   `yaml:"target"`
	Swap      string   `yaml:"swap"`
	Select    string   `yaml:"select,omitempty"`
	Indicator string   `yaml:"indicator,omitempty"`
	Disable   []string `yaml:"disable,omitempty"`
}

func viewJob(job *hxclient.Job) jobView {
	opts := job.Options()
	v := jobView{
		Method: job.Method(),
		URL:    job.URL(),
		Body:   opts.Body,
		Target: describe(job.Target()),
		Swap:   string(job.Swap()),
		Select: job.Selector(),
	}
	if ind := job.Indicator(); ind != nil {
		v.Indicator = describe(ind)
	}
	for _, el := range job.DisableTargets() {
		v.Disable = append(v.Disable, describe(el))
	}
	return v
}

// describe renders a short selector-like label such as "div#out.card".
func describe(el *dom.Element) string {
	var sb strings.Builder
	sb.WriteString(el.Tag())
	if id := el.ID(); id != "" {
		sb.WriteString("#" + id)
	}
	if class, ok := el.GetAttr("class"); ok {
		for _, c := range strings.Fields(class) {
			sb.WriteString("." + c)
		}
	}
	return sb.String()
}

func runResolve(args []string, out io.Writer) error {
	inv, err := parseArgs("resolve", args)
	if err != nil {
		return err
	}
	ctx := context.Background()
	doc, el, err := loadPage(ctx, &http.Client{Timeout: inv.cfg.Timeout}, inv)
	if err != nil {
		return err
	}

	if hxclient.IsDisabled(el) {
		return fmt.Errorf("%s is disabled", describe(el))
	}
	job, err := hxclient.NewJob(doc, el, inv.cfg.BaseURL)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(out)
	defer enc.Close()
	enc.SetIndent(2)
	return enc.Encode(viewJob(job))
}

func runDispatch(ctx context.Context, args []string, out io.Writer) error {
	inv, err := parseArgs("dispatch", args)
	if err != nil {
		return err
	}
	logger, err := inv.cfg.Log.Logger(os.Stderr)
	if err != nil {
		return err
	}

	client := &http.Client{}
	doc, el, err := loadPage(ctx, client, inv)
	if err != nil {
		return err
	}

	if hxclient.IsDisabled(el) {
		return fmt.Errorf("%s is disabled", describe(el))
	}
	if _, err := hxclient.NewJob(doc, el, inv.cfg.BaseURL); err != nil {
		return err
	}

	var dispatchErr error
	opts := append(inv.cfg.Options(logger),
		hxclient.WithHTTPClient(client),
		hxclient.WithOnError(func(_ *hxclient.Job, err error) {
			dispatchErr = err
		}),
	)
	eng := hxclient.New(doc, opts...)
	eng.Dispatch(ctx, el, hxclient.NewEvent("click"))

	if _, err := io.WriteString(out, doc.HTML()+"\n"); err != nil {
		return err
	}
	if dispatchErr != nil {
		return fmt.Errorf("dispatch: %w", dispatchErr)
	}
	return nil
}
