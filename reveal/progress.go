package reveal

import "fmt"

// completeLabel is shown once every data cell is visible.
const completeLabel = "✓ Complete"

// Progress is the walkthrough position summary for progress bars:
// Done/Total revealed data cells, Percent = floor(Done·100/Total), and a
// ready-made Label.
type Progress struct {
	Done    int
	Total   int
	Percent int
	Label   string
}

// Progress derives the current Progress triple. Like classification it is
// a pure projection of State: Done is 0 while NotStarted, the step
// counter while Stepping, Total once Revealed. Label is empty when there
// is nothing to reveal.
func (s State) Progress() Progress {
	p := Progress{
		Done:  s.RevealCount(),
		Total: s.TotalCells(),
	}
	if p.Total == 0 {
		return p
	}

	p.Percent = p.Done * 100 / p.Total
	if p.Done >= p.Total {
		p.Label = completeLabel
	} else {
		p.Label = fmt.Sprintf("%d / %d cells", p.Done, p.Total)
	}

	return p
}
