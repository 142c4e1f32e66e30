// Command autoaim wires the targeting pipeline to a frame source, an
// operator input loop, a turret transport, and match statistics, in the
// same flag-driven, signal-aware process shape as the teacher's own
// NOLO.go main.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autoaim/config"
	"autoaim/frame"
	"autoaim/obslog"
	"autoaim/operator"
	"autoaim/pipeline"
	"autoaim/stats"
	"autoaim/turret"
)

func main() {
	simulate := flag.Bool("simulate", true, "use a simulated frame source instead of a live camera")
	camera := flag.String("camera", "0", "camera device index or RTSP URL, used when -simulate=false")
	serialPort := flag.String("serial", "", "turret serial port, e.g. /dev/ttyACM0; empty disables firing output")
	baud := flag.Int("baud", 115200, "turret serial baud rate")
	verbose := flag.Bool("verbose", false, "print log lines to stdout in addition to the in-memory ring")
	flag.Parse()

	logger := obslog.New(*verbose)
	cfg := config.Default()

	var src frame.Source
	if *simulate {
		src = frame.NewSimulatedSource(func() config.Color { return cfg.EnemyColor })
	} else {
		cam, err := frame.OpenCamera(*camera)
		if err != nil {
			fmt.Fprintf(os.Stderr, "autoaim: %v\n", err)
			os.Exit(1)
		}
		src = cam
	}
	defer src.Close()

	var writer turret.Writer = turret.NullWriter{}
	if *serialPort != "" {
		sw, err := turret.OpenSerialWriter(*serialPort, *baud)
		if err != nil {
			fmt.Fprintf(os.Stderr, "autoaim: %v\n", err)
			os.Exit(1)
		}
		writer = sw
	}
	defer writer.Close()

	in, err := operator.Open()
	if err != nil {
		logger.Printf("OPERATOR", "keyboard input disabled: %v", err)
		in = nil
	}
	if in != nil {
		defer in.Close()
	}

	recorder := stats.New()
	orchestrator := pipeline.NewOrchestrator()
	orchestrator.Logger = logger
	history := pipeline.NewHistory()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	recordShot := func(hitProbability float64) {
		hit := rng.Float64() < hitProbability
		recorder.RecordShot(hit, hitProbability)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-sigCh:
			logger.Printf("MAIN", "shutdown requested")
			return
		case <-ticker.C:
			if in != nil {
				switch in.Poll() {
				case operator.ToggleColor:
					cfg.EnemyColor = cfg.EnemyColor.Toggle()
					logger.Printf("OPERATOR", "enemy color -> %s", cfg.EnemyColor)
				case operator.ForceFire:
					if last, ok := history.Back(); ok {
						cmd := turret.FromResult(last)
						cmd.Fire = true
						if err := writer.Write(cmd); err != nil {
							logger.Printf("TURRET", "force-fire write failed: %v", err)
						} else {
							logger.Printf("OPERATOR", "force-fire on frame %s (yaw=%.2f pitch=%.2f)", last.FrameID, cmd.Yaw, cmd.Pitch)
							recordShot(last.HitProbability)
						}
					} else {
						logger.Printf("OPERATOR", "force-fire requested with empty history, ignored")
					}
				case operator.IncreaseAreaThreshold:
					cfg.Detection.AdjustAreaThreshold(50)
				case operator.DecreaseAreaThreshold:
					cfg.Detection.AdjustAreaThreshold(-50)
				case operator.IncreaseAspectRatio:
					cfg.Detection.AdjustAspectRatioMax(0.5)
				case operator.DecreaseAspectRatio:
					cfg.Detection.AdjustAspectRatioMax(-0.5)
				case operator.Quit:
					logger.Printf("MAIN", "quit requested")
					return
				}
			}

			img, ok := src.NextFrame()
			if !ok {
				continue
			}
			result := orchestrator.Process(img, cfg, history)
			img.Close()

			logger.Printf("DECISION", "frame=%s stage=%s yaw=%.2f pitch=%.2f conf=%.1f hitProb=%.2f fire=%v",
				result.FrameID, result.Stage, result.FiringYaw, result.FiringPitch, result.Confidence, result.HitProbability, result.CanFire)

			cmd := turret.FromResult(result)
			if cmd.Fire {
				if err := writer.Write(cmd); err != nil {
					logger.Printf("TURRET", "write failed: %v", err)
				}
				recordShot(result.HitProbability)
			}
		}
	}
}
