package cmd

import (
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strconv"

	"github.com/google/gops/agent"
	jfsutils "github.com/juicedata/juicefs/pkg/utils"
	"github.com/pkg/errors"
	"github.com/pyroscope-io/client/pyroscope"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"sortdemo/src/store"
)

const version = "0.1.0"

var logger = jfsutils.GetLogger("sortdemo")

func NewApp() *cli.App {
	return &cli.App{
		Name:                 "sortdemo",
		Usage:                "apply bubble, quick and insertion sort to the same input",
		Version:              version,
		EnableBashCompletion: true,
		Flags:                globalFlags(),
		Commands: []*cli.Command{
			CmdRun(),
			CmdBench(),
			CmdList(),
			CmdHistory(),
		},
	}
}

func Main(args []string) error {
	return NewApp().Run(args)
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"debug"},
			Usage:   "enable debug log",
		},
		&cli.BoolFlag{
			Name:  "trace",
			Usage: "enable trace log",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "show warning and errors only",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colors",
		},
		&cli.BoolFlag{
			Name:  "agent",
			Usage: "start the pprof and gops agents on local ports",
		},
		&cli.StringFlag{
			Name:  "pyroscope",
			Usage: "pyroscope address",
		},
		&cli.StringFlag{
			Name:    "meta-url",
			Aliases: []string{"m"},
			EnvVars: []string{"SORTDEMO_META_URL"},
			Usage:   "database to record runs in (mysql://user:pass@(host:port)/db or sqlite3://path)",
		},
	}
}

func setup(c *cli.Context, n int) error {
	if c.NArg() < n {
		return errors.Errorf("%s requires at least %d arguments\nUSAGE:\n   sortdemo %s [command options] %s",
			c.Command.Name, n, c.Command.Name, c.Command.ArgsUsage)
	}

	if c.Bool("trace") {
		jfsutils.SetLogLevel(logrus.TraceLevel)
	} else if c.Bool("verbose") {
		jfsutils.SetLogLevel(logrus.DebugLevel)
	} else if c.Bool("quiet") {
		jfsutils.SetLogLevel(logrus.WarnLevel)
	} else {
		jfsutils.SetLogLevel(logrus.InfoLevel)
	}
	if c.Bool("no-color") {
		jfsutils.DisableLogColor()
	}

	if c.Bool("agent") {
		go func() {
			for port := 6060; port < 6100; port++ {
				_ = http.ListenAndServe(fmt.Sprintf("127.0.0.1:%d", port), nil)
			}
		}()
		go func() {
			for port := 6070; port < 6100; port++ {
				_ = agent.Listen(agent.Options{Addr: fmt.Sprintf("127.0.0.1:%d", port)})
			}
		}()
	}

	if c.IsSet("pyroscope") {
		tags := make(map[string]string)
		if hostname, err := os.Hostname(); err == nil {
			tags["hostname"] = hostname
		}
		tags["pid"] = strconv.Itoa(os.Getpid())
		tags["version"] = version

		if _, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: fmt.Sprintf("sortdemo.%s", c.Command.Name),
			ServerAddress:   c.String("pyroscope"),
			Logger:          logger,
			Tags:            tags,
			AuthToken:       os.Getenv("PYROSCOPE_AUTH_TOKEN"),
			ProfileTypes:    pyroscope.DefaultProfileTypes,
		}); err != nil {
			logger.Errorf("start pyroscope agent: %v", err)
		}
	}
	return nil
}

// openStore returns nil when no meta url is configured.
func openStore(c *cli.Context) (*store.Store, error) {
	url := c.String("meta-url")
	if url == "" {
		return nil, nil
	}
	st, err := store.Open(url)
	if err != nil {
		return nil, err
	}
	st.ShowSQL(c.Bool("verbose") || c.Bool("trace"))
	logger.Debugf("recording runs in the %s store", st.Driver())
	return st, nil
}

func closeStore(st io.Closer) {
	if err := st.Close(); err != nil {
		logger.Warnf("close run store: %s", err)
	}
}
