package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hexwalker/hexapod"
	"github.com/hexwalker/hexapod/legs"
	"github.com/hexwalker/hexapod/math3d"
	"github.com/hexwalker/hexapod/utils"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

var (
	legID  = flag.String("leg", "", "only show this leg (e.g. front_left)")
	yaw    = flag.Float64("yaw", 0, "body yaw (degrees)")
	pitch  = flag.Float64("pitch", 0, "body pitch (degrees)")
	roll   = flag.Float64("roll", 0, "body roll (degrees)")
	dx     = flag.Float64("dx", 0, "body offset along X (mm)")
	dy     = flag.Float64("dy", 0, "body offset along Y (mm)")
	dz     = flag.Float64("dz", 0, "body offset along Z (mm)")
	angles = flag.String("angles", "0,0,0", "joint angles, coxa first (degrees)")
	target = flag.String("target", "", "move the foot of -leg to x,y,z (mm, world space)")
	debug  = flag.Bool("debug", false, "show debug logs")
)

func main() {
	flag.Parse()

	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	theta, err := utils.ParseDegrees(*angles)
	if err != nil {
		fmt.Printf("error parsing -angles: %s\n", err)
		os.Exit(1)
	}

	body := hexapod.NewDefaultBodyFrame()
	body.SetOrientation(utils.Rad(*yaw), utils.Rad(*pitch), utils.Rad(*roll))
	body.SetPosition(math3d.Vector3{X: *dx, Y: *dy, Z: *dz})
	h := legs.NewHexapod(body)

	ls := h.Legs[:]
	if *legID != "" {
		l, err := h.Leg(*legID)
		if err != nil {
			fmt.Printf("error: %s\n", err)
			os.Exit(1)
		}

		ls = []*legs.Leg{l}
	}

	for _, l := range ls {
		if err := l.SetAngles(theta...); err != nil {
			fmt.Printf("error setting angles: %s\n", err)
			os.Exit(1)
		}
	}

	if *target != "" {
		if len(ls) != 1 {
			fmt.Println("-target needs -leg")
			os.Exit(1)
		}

		os.Exit(solve(ls[0], *target))
	}

	fmt.Printf("body: %s\n", body.Pose())
	for _, l := range ls {
		if err := show(l); err != nil {
			fmt.Printf("error: %s\n", err)
			os.Exit(1)
		}
	}
}

func show(l *legs.Leg) error {
	positions, pinv, err := l.InverseKinematicsPass()
	if err != nil {
		return err
	}

	j, err := l.Jacobian()
	if err != nil {
		return err
	}

	fmt.Printf("\n%s (%s)\n", l.ID(), l.Position())
	fmt.Printf("  root: %s\n", l.RootPose())
	for i, p := range positions {
		fmt.Printf("  %d: %s\n", i, p)
	}

	fmt.Printf("  cond: %.4g\n", math3d.Condition(j))
	fmt.Printf("  pinv:\n%s\n", formatMatrix(pinv, "    "))
	return nil
}

func solve(l *legs.Leg, s string) int {
	x, y, z, err := utils.ParseXYZ(s)
	if err != nil {
		fmt.Printf("error parsing -target: %s\n", err)
		return 1
	}

	res, err := legs.Solve(l, math3d.Vector3{X: x, Y: y, Z: z}, legs.DefaultSolveOptions)
	if err != nil {
		fmt.Printf("error: %s\n", err)
		return 2
	}

	fmt.Printf("%s reached %s in %d iterations (%.3fmm away)\n", l.ID(), l.EndEffector(), res.Iterations, res.Distance)
	for i, a := range res.Angles {
		fmt.Printf("  %s: %+.2f°\n", l.Segment(i).Name, utils.Deg(a))
	}

	return 0
}

// formatMatrix renders m over several lines, with every line indented.
func formatMatrix(m mat.Matrix, indent string) string {
	return indent + fmt.Sprintf("%v", mat.Formatted(m, mat.Prefix(indent), mat.Squeeze()))
}
