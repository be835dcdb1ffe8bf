package main

import (
	"fmt"
	"os"
	"path/filepath"

	"hiddenmsg/config"
	"hiddenmsg/util"
)

const (
	AppFolder      = ".hiddenmsg"
	ConfigFilename = "config.yaml"
	LogFilename    = "log.log"
	DbFilename     = "usage.db"
)

func main() {

	if len(os.Args) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		help()
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fatal("Failed to get home directory:", err)
	}
	appFolder := filepath.Join(home, AppFolder)
	if _, err = os.Stat(appFolder); err != nil {
		// first run
		if err = os.Mkdir(appFolder, 0700); err != nil {
			fatal("Failed to create directory in user's home folder:", err)
		}
	}

	configFile := filepath.Join(appFolder, ConfigFilename)
	if _, err := os.Stat(configFile); err != nil {
		if err = config.SaveConfig(configFile, config.DefaultConfig(appFolder)); err != nil {
			fatal("Failed to save default configuration:", err)
		}
	}

	// these don't need a valid configuration
	switch os.Args[1] {
	case "editconf":
		validate := func(data []byte) error {
			_, err := config.ParseConfig(configFile, data)
			return err
		}
		if err = util.EditConfig(configFile, validate); err != nil {
			fatal("Failed to edit configuration:", err)
		}
		return
	case "readlog":
		if err := util.ReadLog(filepath.Join(appFolder, LogFilename)); err != nil {
			fatal("Failed to read log file:", err)
		}
		return
	case "help":
		help()
		return
	}

	conf, err := config.LoadConfig(configFile)
	if err != nil {
		fatal("Failed to load configuration:", err)
	}
	a := newApp(conf)
	defer a.Close()

	args := os.Args[2:]
	switch os.Args[1] {
	case "encode":
		err = a.Encode(args)
	case "decode":
		err = a.Decode(args)
	case "scan":
		err = a.Scan(args)
	case "serve":
		err = a.Serve(args)
	case "stats":
		err = a.Stats(args)
	case "carriers":
		err = a.Carriers(args)
	default:
		help()
		return
	}
	if err != nil {
		a.logger.LogError(err)
		a.Close()
		fatal(os.Args[1]+":", err)
	}
}

func fatal(args ...any) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

func help() {
	line := `Usage: hiddenmsg <command> [arguments]

The following commands are supported:
	encode		hide a message in a carrier (emoji, letter or text)
	decode		find a hidden message in text
	scan		look for hidden messages in files and folders
	serve		run the local HTTP API
	stats		show how often each carrier was used
	carriers	list preset and recently used carriers
	editconf	edit configuration
	readlog		read log file
	help		show this message

Run 'hiddenmsg <command> --help' to see the arguments of a command.
Set HIDDENMSG_DEBUG=1 (or pass --debug) to print debug information.
`
	fmt.Printf("%s", line)
}
