package bridge

// Score is the signed score of the declaring side for contract c.
func Score(c Contract, r *Results) int {
	return ScoreTricks(c, r.TricksWon(c.Side()))
}

// SideScore is Score from side's point of view: defenders get the negation.
func SideScore(c Contract, r *Results, side Side) int {
	s := Score(c, r)
	if side != c.Side() {
		return -s
	}
	return s
}

// ScoreTricks scores c for the declaring side having taken made tricks.
func ScoreTricks(c Contract, made int) int {
	need := c.TricksNeeded()
	if made < need {
		return -undertrickPoints(c.Doubling, need-made)
	}
	contractPoints := contractPoints(c)
	return contractPoints + overtrickPoints(c, made-need) + bonusPoints(c, contractPoints)
}

func contractPoints(c Contract) int {
	var points int
	switch {
	case c.Strain == NoTrump:
		points = 10 + 30*c.Level
	case c.Strain.IsMajor():
		points = 30 * c.Level
	default:
		points = 20 * c.Level
	}
	return points * c.Doubling.Multiplier()
}

func overtrickPoints(c Contract, over int) int {
	switch c.Doubling {
	case Doubled:
		return 100 * over
	case Redoubled:
		return 200 * over
	}
	if c.Strain.IsMinor() {
		return 20 * over
	}
	return 30 * over
}

func bonusPoints(c Contract, contractPoints int) int {
	bonus := 0
	switch c.Level {
	case 6:
		bonus += 500
	case 7:
		bonus += 1000
	}
	if contractPoints >= 100 {
		bonus += 300
	}
	switch c.Doubling {
	case Doubled:
		bonus += 50
	case Redoubled:
		bonus += 100
	}
	return bonus
}

// undertrickPoints is the penalty for going down, as a positive number.
func undertrickPoints(d Doubling, down int) int {
	points := 0
	for i := 1; i <= down; i++ {
		switch d {
		case Undoubled:
			points += 50
		case Doubled:
			points += doubledUndertrick(i)
		case Redoubled:
			points += 2 * doubledUndertrick(i)
		}
	}
	return points
}

// doubledUndertrick is the penalty for the i'th doubled undertrick, counting from 1.
func doubledUndertrick(i int) int {
	switch {
	case i == 1:
		return 100
	case i <= 3:
		return 200
	}
	return 300
}
