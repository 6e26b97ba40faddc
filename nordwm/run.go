package main

import (
	"log"
	"os"

	"github.com/BurntSushi/xgb"
	xp "github.com/BurntSushi/xgb/xproto"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	xConn    *xgb.Conn
	rootXWin xp.Window

	// proactiveChan carries X operations that happen of the program's
	// own accord, such as a reload after the override file changes. These
	// are sent to the main goroutine from other goroutines. In comparison,
	// examples of reactive operations are responding to key presses.
	proactiveChan = make(chan func())
)

type checker interface {
	Check() error
}

var checkers []checker

func check(c checker) {
	checkers = append(checkers, c)
}

func flushChecks() {
	for i, c := range checkers {
		if err := c.Check(); err != nil {
			log.Println(err)
		}
		checkers[i] = nil
	}
	checkers = checkers[:0]
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the session daemon",
	Long: "Run grabs the configured keys on the root window, advertises the " +
		"window manager name and runs the bound commands until shutdown.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cfg, err := currentConfig()
		if err != nil {
			return err
		}
		if s.Display != "" {
			// Spawned programs connect to the same display.
			os.Setenv("DISPLAY", s.Display)
		}
		if err := connect(s.Display); err != nil {
			return err
		}
		session = s

		initAtoms()
		initIdentity(cfg.Flags.WMName)
		if err := loadKeyboardMapping(); err != nil {
			log.Fatal(err)
		}
		install(cfg)

		if s.Watch {
			w, err := watchOverrides(s.Overrides, func() {
				proactiveChan <- doRestart
			})
			if err != nil {
				log.Printf("watch: %v", err)
			} else {
				defer w.Close()
			}
		}
		eventLoop()
		return nil
	},
}

func init() {
	runCmd.Flags().Bool("watch", false, "restart when the override file changes")
	_ = viper.BindPFlag("watch", runCmd.Flags().Lookup("watch"))
	rootCmd.AddCommand(runCmd)
}

type xEventOrError struct {
	event xgb.Event
	error xgb.Error
}

func eventLoop() {
	eeChan := make(chan xEventOrError)
	go func() {
		for {
			e, err := xConn.WaitForEvent()
			if e == nil && err == nil {
				log.Fatal("X connection closed")
			}
			eeChan <- xEventOrError{e, err}
		}
	}()
	for {
		flushChecks()

		select {
		case f := <-proactiveChan:
			f()
		case ee := <-eeChan:
			if ee.error != nil {
				log.Println(ee.error)
				continue
			}
			switch e := ee.event.(type) {
			case xp.KeyPressEvent:
				handleKeyPress(e)
			case xp.KeyReleaseEvent:
				// No-op.
			case xp.MappingNotifyEvent:
				handleMappingNotify(e)
			default:
				log.Printf("unhandled event: %v", ee.event)
			}
		}
	}
}
