// Command scenecheck validates a scene spec and runs it headless at a fixed
// step, reporting when followers reach their trails.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/milk9111/convoy/ecs"
	"github.com/milk9111/convoy/input"
	"github.com/milk9111/convoy/logging"
	"github.com/milk9111/convoy/prefabs"
	"github.com/milk9111/convoy/sim"
)

func main() {
	scene := pflag.String("scene", prefabs.SceneFile, "scene spec name")
	dir := pflag.String("dir", prefabs.Dir, "directory holding scene overrides")
	ticks := pflag.Int("ticks", 600, "frames to simulate")
	step := pflag.Float64("step", sim.MaxDelta, "seconds per frame")
	walk := pflag.Bool("walk", false, "hold forward on the player for the whole run")
	level := pflag.String("log-level", "warn", "log level")
	pflag.Parse()

	log := logging.New(os.Stderr, *level, false)
	prefabs.Dir = *dir

	spec, err := prefabs.LoadSceneSpec(*scene)
	if err != nil {
		log.Fatal().Err(err).Msg("load scene")
	}
	session, err := sim.New(spec, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build scene")
	}
	if *walk {
		session.Input().SetLevel(input.Forward, true)
	}

	for i := 1; i <= *ticks; i++ {
		for _, evt := range session.Step(float64(i) * *step) {
			if evt.Kind == ecs.EventFollowerReady {
				fmt.Printf("tick %d: follower %v on trail\n", i, evt.Data)
			}
		}
	}

	st := session.State()
	fmt.Printf("t=%.2f camera=%s player=%s grabbed=%v arrived=%v\n",
		st.Time, st.CameraSlot, st.PlayerState, st.Grabbed, st.Arrived)
}
