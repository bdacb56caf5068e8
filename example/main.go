package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/google/gops/agent"
	"github.com/sirupsen/logrus"

	"github.com/neganovalexey/bstset/bst"
	"github.com/neganovalexey/bstset/set"
)

func join(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprint(k)
	}
	return strings.Join(parts, " ")
}

func main() {
	withGops := flag.Bool("gops", false, "start gops diagnostics agent")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if *withGops {
		if err := agent.Listen(agent.Options{}); err != nil {
			log.WithError(err).Fatal("gops agent")
		}
		defer agent.Close()
	}

	cfg := set.Config{Log: log}
	s := set.NewWithConfig[int](cfg)
	s.Emplace(5, 4, 1, 7, 2, 8, 6)
	s.Merge(set.NewWithConfig(cfg, 1, 2, 3))

	fmt.Print(s)
	for _, o := range bst.Orders {
		log.WithFields(logrus.Fields{
			"order": o,
			"size":  s.Size(),
		}).Info(join(s.Keys(o)))
	}
	log.WithField("fingerprint", fmt.Sprintf("%016x", s.Fingerprint())).Info("shape digest")
}
