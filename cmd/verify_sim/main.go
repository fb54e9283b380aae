// verify_sim 无头验证工具
//
// 不依赖 ebiten 窗口，直接驱动模拟内核：像玩家一样从展示阶段的点亮
// 过渡里记下图案，再在输入阶段复现它。跑若干个完美回合后故意按错，
// 验证分数归零、最高分保留、图案重置为长度 1。
//
// 用法：
//
//	go run ./cmd/verify_sim -seed 42 -rounds 5
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/decker502/simon/pkg/sim"
)

var (
	seedFlag   = flag.Int64("seed", 42, "图案序列随机种子")
	roundsFlag = flag.Int("rounds", 5, "故意按错之前的完美回合数")
	verbose    = flag.Bool("verbose", false, "逐帧输出过渡与结果")
)

const dt = 1.0 / 60.0

// driver 无头驱动器：观察点亮过渡记录图案，再按记录回放
type driver struct {
	simulation *sim.Simulation
	observed   []sim.Button
}

// step 推进一帧并记录展示阶段的点亮过渡
func (d *driver) step(presses []sim.Button) sim.StepResult {
	res := d.simulation.Step(dt, presses)
	for _, tr := range res.Transitions {
		if *verbose {
			log.Printf("[verify_sim] transition: %s -> %v", tr.Button, tr.Category)
		}
		if d.simulation.Phase() == sim.PhaseShowPattern && tr.Category == sim.CategoryLit {
			d.observed = append(d.observed, tr.Button)
		}
	}
	return res
}

// watchPattern 走完展示阶段，返回观察到的完整图案
func (d *driver) watchPattern() []sim.Button {
	d.observed = d.observed[:0]
	for d.simulation.Phase() == sim.PhaseShowPattern {
		d.step(nil)
	}
	return d.observed
}

// playRound 在输入阶段回放图案；wrongAt >= 0 时在该位置故意按错
// 返回该回合观察到的结果列表
func (d *driver) playRound(pattern []sim.Button, wrongAt int) []sim.RoundOutcome {
	var outcomes []sim.RoundOutcome
	for i, b := range pattern {
		press := b
		if i == wrongAt {
			press = wrongButton(b)
		}
		res := d.step([]sim.Button{press})
		outcomes = append(outcomes, res.Outcomes...)
		if i == wrongAt {
			return outcomes
		}
		// 按键之间空几帧，让反馈计时走动
		for j := 0; j < 6; j++ {
			d.step(nil)
		}
	}
	return outcomes
}

// wrongButton 返回任意一个不同于 b 的按钮
func wrongButton(b sim.Button) sim.Button {
	for _, other := range sim.AllButtons {
		if other != b {
			return other
		}
	}
	return b
}

func main() {
	flag.Parse()
	log.SetFlags(0)

	cfg := sim.Config{
		RevealInterval: 1.0,
		PressDuration:  0.5,
		LitDuration:    0.8,
	}
	d := &driver{
		simulation: sim.NewSimulation(cfg, rand.New(rand.NewSource(*seedFlag))),
	}

	fmt.Printf("=== verify_sim: seed=%d rounds=%d ===\n", *seedFlag, *roundsFlag)

	failed := false
	check := func(ok bool, format string, args ...interface{}) {
		status := "PASS"
		if !ok {
			status = "FAIL"
			failed = true
		}
		fmt.Printf("[%s] %s\n", status, fmt.Sprintf(format, args...))
	}

	// 完美回合：观察图案并复现
	for round := 1; round <= *roundsFlag; round++ {
		pattern := d.watchPattern()
		check(len(pattern) == round, "round %d: observed pattern length %d", round, len(pattern))

		outcomes := d.playRound(pattern, -1)
		complete := len(outcomes) > 0 && outcomes[len(outcomes)-1] == sim.OutcomeComplete
		check(complete, "round %d: completed", round)

		current, high := d.simulation.Score()
		check(current == round && high == round,
			"round %d: score=%d high=%d", round, current, high)
		check(d.simulation.PatternLen() == round+1,
			"round %d: pattern grew to %d", round, d.simulation.PatternLen())
	}

	// 故意按错：分数归零、最高分保留、图案重置
	pattern := d.watchPattern()
	outcomes := d.playRound(pattern, 0)
	mistake := len(outcomes) > 0 && outcomes[len(outcomes)-1] == sim.OutcomeMistake
	check(mistake, "deliberate mistake detected")

	current, high := d.simulation.Score()
	check(current == 0, "score reset to 0 after mistake (got %d)", current)
	check(high == *roundsFlag, "high score preserved at %d (got %d)", *roundsFlag, high)
	check(d.simulation.Phase() == sim.PhaseShowPattern, "back to show phase")
	check(d.simulation.PatternLen() == 1, "pattern reset to length 1 (got %d)", d.simulation.PatternLen())

	if failed {
		fmt.Println("=== verify_sim: FAILED ===")
		os.Exit(1)
	}
	fmt.Println("=== verify_sim: OK ===")
}
