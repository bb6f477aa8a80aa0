package widget

import "github.com/treykane/cli-calc/internal/calc"

type percentChange struct{}

func (percentChange) ID() string { return "percent-change" }

func (percentChange) Fields() []Field {
	return []Field{
		{Key: "start", Label: "start value", Placeholder: "e.g. 100"},
		{Key: "end", Label: "end value", Placeholder: "e.g. 150"},
	}
}

func (w percentChange) Evaluate(inputs []string, opts calc.FormatOptions) Outcome {
	nums, err := operands(w.Fields(), inputs)
	if err != nil {
		return failed(err)
	}
	change := calc.ChangeBetween(nums[0], nums[1])
	if !change.Percent.IsValid() {
		return failed(invalid("start value cannot be zero"))
	}
	return Outcome{
		Value:     change.Percent,
		Direction: change.Rounded(opts).Direction,
		Display:   calc.FormatChange(change, opts),
	}
}

type percentOf struct{}

func (percentOf) ID() string { return "percent-of" }

func (percentOf) Fields() []Field {
	return []Field{
		{Key: "part", Label: "part", Placeholder: "e.g. 25"},
		{Key: "whole", Label: "whole", Placeholder: "e.g. 200"},
	}
}

func (w percentOf) Evaluate(inputs []string, opts calc.FormatOptions) Outcome {
	nums, err := operands(w.Fields(), inputs)
	if err != nil {
		return failed(err)
	}
	v := calc.PercentOf(nums[0], nums[1])
	if !v.IsValid() {
		return failed(invalid("whole cannot be zero"))
	}
	opts.Style = calc.StylePercent
	return Outcome{Value: v, Display: calc.Format(v, opts)}
}

type percentOfValue struct{}

func (percentOfValue) ID() string { return "percent-of-value" }

func (percentOfValue) Fields() []Field {
	return []Field{
		{Key: "percent", Label: "percent", Placeholder: "e.g. 20"},
		{Key: "value", Label: "value", Placeholder: "e.g. 150"},
	}
}

func (w percentOfValue) Evaluate(inputs []string, opts calc.FormatOptions) Outcome {
	nums, err := operands(w.Fields(), inputs)
	if err != nil {
		return failed(err)
	}
	v := calc.PercentageOfValue(nums[0], nums[1])
	if !v.IsValid() {
		return failed(invalid("result is out of range"))
	}
	opts.Style = calc.StyleNumber
	return Outcome{Value: v, Display: calc.Format(v, opts)}
}

type arithmetic struct{}

func (arithmetic) ID() string { return "arithmetic" }

func (arithmetic) Fields() []Field {
	return []Field{
		{Key: "a", Label: "first number", Placeholder: "e.g. 12"},
		{Key: "op", Label: "operator", Placeholder: "+ - * /"},
		{Key: "b", Label: "second number", Placeholder: "e.g. 4"},
	}
}

func (w arithmetic) Evaluate(inputs []string, opts calc.FormatOptions) Outcome {
	fields := w.Fields()
	a, ok := calc.ToNumber(input(inputs, 0)).Float()
	if !ok {
		return failed(invalid("%s is not a number", fields[0].Label))
	}
	op, ok := calc.ParseOperator(input(inputs, 1))
	if !ok {
		return failed(invalid("operator must be one of + - * /"))
	}
	b, ok := calc.ToNumber(input(inputs, 2)).Float()
	if !ok {
		return failed(invalid("%s is not a number", fields[2].Label))
	}

	v := calc.Apply(op, a, b)
	if !v.IsValid() {
		if op == calc.OpDivide && b == 0 {
			return failed(invalid("cannot divide by zero"))
		}
		return failed(invalid("result is out of range"))
	}
	opts.Style = calc.StyleNumber
	return Outcome{Value: v, Display: calc.Format(v, opts)}
}
