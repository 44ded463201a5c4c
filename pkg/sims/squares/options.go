package squares

// settings are shared by Grid and Naive.
type settings struct {
	rule     Rule
	ruleName string
	workers  int
}

func defaultSettings() settings {
	return settings{rule: DefaultRule, ruleName: thresholdName(Threshold), workers: 1}
}

// Option customises a simulation at construction time.
type Option func(*settings)

// WithRule replaces the promotion rule. name is only used for reporting.
func WithRule(name string, r Rule) Option {
	return func(s *settings) {
		if r == nil {
			return
		}
		s.rule = r
		s.ruleName = name
	}
}

// WithThreshold swaps in an AtLeast(k) rule.
func WithThreshold(k int) Option {
	return WithRule(thresholdName(k), AtLeast(k))
}

// WithWorkers scans large frontiers with n goroutines. Values below 1 mean 1.
// Naive ignores it.
func WithWorkers(n int) Option {
	return func(s *settings) {
		if n < 1 {
			n = 1
		}
		s.workers = n
	}
}

func applyOptions(opts []Option) settings {
	s := defaultSettings()
	for _, o := range opts {
		if o != nil {
			o(&s)
		}
	}
	return s
}
