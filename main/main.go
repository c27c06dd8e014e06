// Command main drains a file (or stdin) through the chunked stream reader
// and reports its size and distinct line count.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/rawbytedev/bufref"
	"github.com/rawbytedev/bufref/pkg/stream"
	"github.com/rawbytedev/bufref/pkg/viewset"
	"github.com/sirupsen/logrus"
)

func main() {
	config := flag.String("config", "", "YAML stream options file")
	compressed := flag.Bool("zstd", false, "input is zstd compressed")
	memprofile := flag.String("memprofile", "", "write a heap profile to this file")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log := logrus.WithField("component", "drain")

	opts := stream.DefaultOptions()
	if *config != "" {
		var err error
		if opts, err = stream.LoadOptions(*config); err != nil {
			log.Fatal(err)
		}
	}
	lvl, err := opts.Level()
	if err != nil {
		log.Fatal(err)
	}
	logrus.SetLevel(lvl)
	opts.Logger = logrus.WithField("component", "stream")

	if *memprofile != "" {
		runtime.MemProfileRate = 1
	}

	var in io.Reader = os.Stdin
	name := "stdin"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
		f, err := os.Open(name)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	var src stream.Source = in
	if *compressed {
		z, err := stream.NewZstdSource(in)
		if err != nil {
			log.Fatal(err)
		}
		defer z.Close()
		src = z
	}

	buf, err := stream.NewReader(src, opts).ReadToEnd()
	if err != nil {
		log.WithError(err).WithField("input", name).Error("drain failed")
	}

	lines := distinctLines(buf.View())
	fmt.Printf("%s: %d bytes, %d distinct lines\n", name, buf.Len(), lines)

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal(err)
		}
	}
}

// distinctLines splits v on '\n' without copying and counts unique lines.
func distinctLines(v bufref.View[byte]) int {
	set := viewset.New(0)
	for !v.IsEmpty() {
		i := bufref.Index(v, '\n')
		if i < 0 {
			set.Insert(v)
			break
		}
		set.Insert(v.Slice(0, i))
		v.Skip(i + 1)
	}
	return set.Len()
}
