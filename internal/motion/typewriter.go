package motion

// Phase is the typewriter's current step.
type Phase int

const (
	Typing Phase = iota
	Pausing
	Deleting
	NextWord
	Stopped
)

func (p Phase) String() string {
	return [...]string{"typing", "pausing", "deleting", "next-word", "stopped"}[p]
}

// TypewriterConfig holds the timings, in milliseconds.
type TypewriterConfig struct {
	Words       []string
	Delay       float64
	TypeSpeed   float64
	DeleteSpeed float64
	Loop        bool
}

// DefaultTypewriterConfig returns the site's timings for words.
func DefaultTypewriterConfig(words ...string) TypewriterConfig {
	return TypewriterConfig{
		Words:       words,
		Delay:       2000,
		TypeSpeed:   100,
		DeleteSpeed: 50,
		Loop:        true,
	}
}

// Typewriter types each word one rune at a time, holds it, deletes it and moves on.
// Without Loop it stops, empty, after deleting the last word.
type Typewriter struct {
	cfg   TypewriterConfig
	words [][]rune

	index   int
	shown   int
	phase   Phase
	elapsed float64
	wait    float64
}

func NewTypewriter(cfg TypewriterConfig) *Typewriter {
	tw := &Typewriter{cfg: cfg}
	for _, w := range cfg.Words {
		tw.words = append(tw.words, []rune(w))
	}
	if len(tw.words) == 0 {
		tw.phase = Stopped
	}
	tw.wait = tw.interval(cfg.TypeSpeed)
	return tw
}

// Tick advances by dt seconds.
func (tw *Typewriter) Tick(dt float64) {
	tw.Advance(dt * 1000)
}

// Advance moves the machine forward by ms milliseconds, taking every transition that
// falls due.
func (tw *Typewriter) Advance(ms float64) {
	if tw.phase == Stopped || ms <= 0 {
		return
	}
	tw.elapsed += ms
	for tw.phase != Stopped && tw.elapsed >= tw.wait {
		tw.elapsed -= tw.wait
		tw.step()
	}
	if tw.phase == Stopped {
		tw.elapsed = 0
	}
}

func (tw *Typewriter) step() {
	word := tw.words[tw.index]
	switch tw.phase {
	case Typing:
		if tw.shown < len(word) {
			tw.shown++
			tw.wait = tw.interval(tw.cfg.TypeSpeed)
			return
		}
		tw.phase = Pausing
		tw.wait = tw.interval(tw.cfg.Delay)
	case Pausing:
		tw.phase = Deleting
		tw.wait = tw.interval(tw.cfg.DeleteSpeed)
	case Deleting:
		if tw.shown > 0 {
			tw.shown--
			tw.wait = tw.interval(tw.cfg.DeleteSpeed)
			return
		}
		if !tw.cfg.Loop && tw.index == len(tw.words)-1 {
			tw.phase = Stopped
			return
		}
		tw.phase = NextWord
		tw.wait = 0
	case NextWord:
		tw.index = (tw.index + 1) % len(tw.words)
		tw.phase = Typing
		tw.wait = tw.interval(tw.cfg.TypeSpeed)
	}
}

// interval keeps every timed step strictly positive so Advance always terminates.
func (tw *Typewriter) interval(ms float64) float64 {
	return max(ms, 1)
}

// Text is the currently visible prefix of the current word.
func (tw *Typewriter) Text() string {
	if len(tw.words) == 0 {
		return ""
	}
	return string(tw.words[tw.index][:tw.shown])
}

func (tw *Typewriter) Phase() Phase { return tw.phase }
func (tw *Typewriter) Index() int   { return tw.index }
