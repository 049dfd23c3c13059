package searcher

import "gomoku/game"

// rollout plays random candidate moves on b until the game ends or the
// cutoff is reached and returns the result for the player to move at the
// start. b is consumed.
func (m *MCTS) rollout(b *game.Board) float64 {
	m.metrics.AddRollout()
	player := b.ToMove()

	for depth := 0; depth < m.cutoff; depth++ {
		if over, winner := game.Terminal(b); over {
			return outcomeFor(winner, player)
		}
		moves := b.CandidateMoves()
		if len(moves) == 0 {
			return Draw
		}
		// Random rollout policy
		if err := b.ApplyMove(moves[m.rng.Intn(len(moves))]); err != nil {
			return Draw
		}
	}

	if over, winner := game.Terminal(b); over {
		return outcomeFor(winner, player)
	}
	// At cutoff state, evaluate from the side to move and convert
	score := m.evaluate(b)
	if b.ToMove() != player {
		score = -score
	}
	return score
}

func outcomeFor(winner, player game.Player) float64 {
	switch winner {
	case game.Empty:
		return Draw
	case player:
		return Win
	default:
		return Loss
	}
}
