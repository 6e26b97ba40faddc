package main

import (
	"log"
	"os"
	"os/exec"

	xp "github.com/BurntSushi/xgb/xproto"

	"github.com/nigeltao/nordwm/wm"
)

var (
	// bindings indexes the live configuration's keys.
	bindings map[wm.Chord]wm.Key

	// session holds the settings run started with. Restart re-reads the
	// override file they name.
	session settings
)

// install makes cfg the live configuration and grabs its keys.
func install(cfg *wm.Config) {
	bindings = wm.Index(cfg.Keys)
	grabKeys()
	setWMName(cfg.Flags.WMName)
}

func do(k wm.Key) {
	switch a := k.Action.(type) {
	case wm.Spawn:
		doSpawn(a.Cmd)
	case wm.Restart:
		doRestart()
	case wm.Shutdown:
		doShutdown()
	default:
		log.Printf("%s: %s is not handled by this runtime", k.Label(), a)
	}
}

// doSpawn runs cmd with the shell, as the bindings are written in shell
// syntax.
func doSpawn(cmd string) {
	go func() {
		c := exec.Command("/bin/sh", "-c", cmd)
		if err := c.Start(); err != nil {
			log.Printf("could not start command %q: %v", cmd, err)
			return
		}
		// Ignore any error from the program itself.
		c.Wait()
	}()
}

// doRestart re-assembles the configuration. A configuration that fails to
// assemble is logged and the previous one stays live.
func doRestart() {
	cfg, err := loadConfig(session)
	if err != nil {
		log.Printf("restart: %v", err)
		return
	}
	install(cfg)
	log.Printf("restart: %d keys grabbed", len(bindings))
}

func doShutdown() {
	check(xp.UngrabKeyChecked(xConn, xp.GrabAny, rootXWin, xp.ModMaskAny))
	check(xp.DestroyWindowChecked(xConn, checkXWin))
	flushChecks()
	xConn.Close()
	os.Exit(0)
}
