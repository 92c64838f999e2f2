package game

type PlayerIterator struct {
	players []*playerController
	cycler  *Cycler
}

func newPlayerIterator(players []Player) *PlayerIterator {
	controllers := make([]*playerController, 0, len(players))
	for _, player := range players {
		controllers = append(controllers, newPlayerController(player))
	}
	return &PlayerIterator{
		players: controllers,
		cycler:  NewCycler(len(controllers)),
	}
}

func (i *PlayerIterator) Current() *playerController {
	return i.players[i.cycler.Current()]
}

func (i *PlayerIterator) CurrentIndex() int {
	return i.cycler.Current()
}

func (i *PlayerIterator) Direction() int {
	return i.cycler.Direction()
}

func (i *PlayerIterator) ForEach(function func(player *playerController)) {
	for _, player := range i.players {
		function(player)
	}
}

func (i *PlayerIterator) Get(index int) *playerController {
	return i.players[index]
}

func (i *PlayerIterator) Len() int {
	return len(i.players)
}

func (i *PlayerIterator) Next() *playerController {
	return i.players[i.cycler.Next()]
}

func (i *PlayerIterator) Reverse() {
	i.cycler.Reverse()
}

// Skip moves the pointer onto the next player and returns them. The regular
// end-of-turn advance then moves past them.
func (i *PlayerIterator) Skip() *playerController {
	return i.Next()
}
