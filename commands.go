package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"hiddenmsg/config"
	"hiddenmsg/local"
	"hiddenmsg/scan"
	"hiddenmsg/util"
)

var errHelp = errors.New("help requested")

type app struct {
	conf   *config.FullConfig
	logger *util.Logger
	store  util.UsageStore
	db     *util.DB
	out    *termenv.Output
}

func newApp(conf *config.FullConfig) *app {
	a := &app{
		conf:   conf,
		logger: util.NewLogger(&conf.Logger),
		out:    termenv.NewOutput(os.Stdout),
	}
	a.store = util.NewStorage(conf.RecentsLimit)
	if conf.DbFile != "" {
		db, err := util.ConnectDB(conf.DbFile, conf.DbRowsLimit, conf.RecentsLimit)
		if err != nil {
			// statistics are optional, keep them in memory
			a.logger.LogWarning("Failed to open database, statistics won't be saved: " + err.Error())
		} else {
			a.db = db
			a.store = db
		}
	}
	return a
}

func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
		a.db = nil
	}
}

func newFlagSet(name string) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.Bool("debug", false, "print debug information")
	return flagSet
}

// parses args, returning the positional ones
func parse(flagSet *pflag.FlagSet, args []string) ([]string, error) {
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil, errHelp
		}
		return nil, err
	}
	if debug, _ := flagSet.GetBool("debug"); debug {
		util.SetDebug(true)
	}
	return flagSet.Args(), nil
}

// input joins the positional arguments, or reads stdin when there are none.
// An interactive terminal is asked for the text without echo.
func input(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if util.IsTerminal() {
		secret, err := util.GetSecret(prompt)
		return string(secret), err
	}
	data, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func (a *app) Encode(args []string) error {
	var req local.EncodeRequest
	flagSet := newFlagSet("encode")
	flagSet.StringVarP(&req.Carrier, "carrier", "c", "", "carrier emoji, letter or text (random preset if empty)")
	flagSet.StringVarP(&req.Mode, "mode", "m", "", "single or multi")
	flagSet.StringVarP(&req.Scheme, "scheme", "s", "", "32-VS, 16-VS, ZW-SPACE or ZWJ-BINARY")
	flagSet.StringVarP(&req.Placement, "placement", "p", "", "prefix, suffix or embed")
	rest, err := parse(flagSet, args)
	if err == errHelp {
		return nil
	} else if err != nil {
		return err
	}

	if req.Message, err = input(rest, "Message: "); err != nil {
		return err
	}
	res, err := local.Encode(&a.conf.Encoder, &req)
	if err != nil {
		return err
	}
	if err = a.store.RecordUsage(res.Carrier); err != nil {
		a.logger.LogError(err)
	}
	util.DebugPrintf("encoded with %s into %q\n", res.Scheme, res.Carrier)
	fmt.Println(res.Text)
	return nil
}

func (a *app) Decode(args []string) error {
	var req local.DecodeRequest
	flagSet := newFlagSet("decode")
	flagSet.BoolVar(&req.Raw, "raw", false, "print raw 32-VS bytes, base64-encoded")
	noLearn := flagSet.Bool("no-auto-learn", false, "don't try to infer unknown schemes")
	threshold := flagSet.Float64("threshold", 0, "printable ratio a message must exceed")
	rest, err := parse(flagSet, args)
	if err == errHelp {
		return nil
	} else if err != nil {
		return err
	}
	if *noLearn {
		a.conf.Decoder.AutoLearn = false
	}
	if *threshold > 0 {
		a.conf.Decoder.Threshold = *threshold
	}

	if req.Text, err = input(rest, "Text: "); err != nil {
		return err
	}
	resp := local.Decode(a.conf.Decoder.TextDecoder(), &req)
	if len(resp.Errors) > 0 {
		return errors.New(strings.Join(resp.Errors, "; "))
	}
	if !resp.Found {
		return errors.New("no hidden message found")
	}
	if req.Raw {
		fmt.Println(resp.Data)
		return nil
	}
	fmt.Println(resp.Text)
	scheme := resp.Scheme
	if resp.Detail != "" {
		scheme += ", " + resp.Detail
	}
	fmt.Fprintln(os.Stderr, a.out.String("["+scheme+"]").Faint())
	a.printLinks(resp.Links)
	return nil
}

func (a *app) Scan(args []string) error {
	flagSet := newFlagSet("scan")
	workers := flagSet.UintP("workers", "w", a.conf.Scanner.Workers, "number of decoding workers")
	rest, err := parse(flagSet, args)
	if err == errHelp {
		return nil
	} else if err != nil {
		return err
	}
	if len(rest) == 0 {
		rest = []string{"."}
	}
	a.conf.Scanner.Workers = *workers

	scanner := scan.NewScanner(a.conf.Scanner, a.conf.Decoder.TextDecoder())
	hits, scanErr := scanner.ScanFiles(rest)
	for _, h := range hits {
		location := a.out.String(fmt.Sprintf("%s:%d:", h.Source, h.Line)).Foreground(a.out.Color("5"))
		scheme := a.out.String("[" + h.Result.Scheme + "]").Faint()
		fmt.Println(location, scheme, a.out.String(h.Result.Text).Foreground(a.out.Color("2")).Bold())
		a.printLinks(local.MakeLinks(h.Links))
	}
	if scanErr != nil {
		a.logger.LogWarning(scanErr.Error())
	}
	fmt.Fprintf(os.Stderr, "%d hidden message(s) found\n", len(hits))
	return scanErr
}

func (a *app) printLinks(links []local.Link) {
	for _, l := range links {
		line := "  -> " + l.Short
		if l.GIF {
			line += " (gif)"
		}
		fmt.Println(a.out.String(line).Underline())
	}
}

func (a *app) Serve(args []string) error {
	flagSet := newFlagSet("serve")
	flagSet.StringVarP(&a.conf.ServerConfig.Address, "address", "a", a.conf.ServerConfig.Address, "address to listen at")
	if _, err := parse(flagSet, args); err == errHelp {
		return nil
	} else if err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "Listening at", a.conf.ServerConfig.Address)
	return local.RunApiServer(a.conf, a.store, a.logger)
}

func (a *app) Stats(args []string) error {
	if _, err := parse(newFlagSet("stats"), args); err == errHelp {
		return nil
	} else if err != nil {
		return err
	}
	stats, err := a.store.Stats()
	if err != nil {
		return err
	}
	carriers := make([]string, 0, len(stats))
	for c := range stats {
		carriers = append(carriers, c)
	}
	sort.Slice(carriers, func(i, j int) bool {
		if stats[carriers[i]] != stats[carriers[j]] {
			return stats[carriers[i]] > stats[carriers[j]]
		}
		return carriers[i] < carriers[j]
	})
	for _, c := range carriers {
		fmt.Printf("%6d  %s\n", stats[c], c)
	}
	return nil
}

func (a *app) Carriers(args []string) error {
	flagSet := newFlagSet("carriers")
	clearRecents := flagSet.Bool("clear", false, "forget recently used carriers")
	if _, err := parse(flagSet, args); err == errHelp {
		return nil
	} else if err != nil {
		return err
	}
	if *clearRecents {
		return a.store.ClearRecents()
	}
	recents, err := a.store.Recents(0)
	if err != nil {
		return err
	}
	fmt.Println("recent:  ", strings.Join(recents, " "))
	fmt.Println("presets: ", strings.Join(a.conf.Encoder.Carriers, " "))
	fmt.Println("alphabet:", strings.Join(a.conf.Encoder.Alphabet, " "))
	return nil
}
