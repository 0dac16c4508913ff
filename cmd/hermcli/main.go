package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	herm "github.com/herm-io/herm-go"
	"github.com/pkg/errors"
	"github.com/segmentio/conf"
	"github.com/segmentio/events/v2"
	_ "github.com/segmentio/events/v2/log"
	_ "github.com/segmentio/events/v2/text"
)

var version = ""

func main() {
	var err error
	var ld = conf.Loader{
		Name: "hermcli",
		Args: os.Args[1:],
		Commands: []conf.Command{
			{Name: "encode", Help: "Encode a fetch request and print it as hex"},
			{Name: "decode", Help: "Decode a hex-encoded fetch request"},
			{Name: "help", Help: "Show the hermcli help"},
			{Name: "version", Help: "Show the hermcli version"},
		},
	}

	switch cmd, args := conf.LoadWith(nil, ld); cmd {
	case "encode":
		err = encode(args)
	case "decode":
		err = decode(args)
	case "help":
		ld.PrintHelp(nil)
	case "version":
		fmt.Println(version)
	default:
		panic("unreachable")
	}

	if err != nil {
		events.Log("%{error}s", err)
		os.Exit(1)
	}
}

func encode(args []string) (err error) {
	config := struct {
		Topic     string `conf:"topic"     help:"Name of the topic to fetch from"`
		Partition uint32 `conf:"partition" help:"Partition to fetch from"`
		Offset    uint64 `conf:"offset"    help:"Offset of the first record to fetch"`
		MaxSize   uint32 `conf:"max-size"  help:"Cap on the number of bytes returned by the fetch"`
	}{
		MaxSize: 1 << 20,
	}

	conf.LoadWith(&config, conf.Loader{
		Name: "hermcli encode",
		Args: args,
	})

	defer func() {
		if v := recover(); v != nil {
			err = convertPanicToError(v)
		}
	}()

	req, err := herm.NewFetchRequest(config.Topic, config.Partition, config.Offset, config.MaxSize)
	if err != nil {
		return errors.Wrap(err, "failed to build fetch request")
	}

	fmt.Println(hex.EncodeToString(req.Bytes()))
	return nil
}

func decode(args []string) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = convertPanicToError(v)
		}
	}()

	var input string
	if len(args) > 0 {
		input = args[0]
	} else {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return errors.Wrap(err, "failed to read standard input")
		}
		input = string(b)
	}

	raw, err := hex.DecodeString(strings.TrimSpace(input))
	if err != nil {
		return errors.Wrap(err, "input is not valid hex")
	}

	req, err := herm.ReadFetchRequest(raw)
	if err != nil {
		return errors.Wrap(err, "failed to decode fetch request")
	}

	fmt.Printf("topic: %s\n", req.Topic())
	fmt.Printf("partition: %d\n", req.Partition())
	fmt.Printf("offset: %d\n", req.Offset())
	fmt.Printf("max size: %d\n", req.MaxSize())
	fmt.Printf("wire size: %d\n", req.Size())
	return nil
}

func convertPanicToError(v interface{}) error {
	switch x := v.(type) {
	case error:
		return x
	case string:
		return errors.New(x)
	default:
		return fmt.Errorf("%v", x)
	}
}
