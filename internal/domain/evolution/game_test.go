package evolution

import "testing"

func TestGameLocateAnimal(t *testing.T) {
	g := twoPlayerGame()

	playerID, index, ok := g.LocateAnimal("b-1")
	if !ok || playerID != "bob" || index != 0 {
		t.Fatalf("got (%s, %d, %v)", playerID, index, ok)
	}

	if _, _, ok := g.LocateAnimal("ghost"); ok {
		t.Fatal("unknown animal must not locate")
	}
}

func TestGameWithAnimalDoesNotAliasReceiver(t *testing.T) {
	g := twoPlayerGame()
	animal, _ := g.AnimalByID("a-1")
	animal.Food = 3

	out := g.WithAnimal(animal)

	orig, _ := g.AnimalByID("a-1")
	if orig.Food != 0 {
		t.Fatalf("receiver mutated, food = %d", orig.Food)
	}
	updated, _ := out.AnimalByID("a-1")
	if updated.Food != 3 {
		t.Fatalf("copy not updated, food = %d", updated.Food)
	}
}

func TestGameWithFoodFloorsAtZero(t *testing.T) {
	g := twoPlayerGame()
	out := g.WithFood(-2)
	if out.Food != 0 {
		t.Fatalf("food = %d, want 0", out.Food)
	}
}

func TestGameNextPlayerWraps(t *testing.T) {
	g := twoPlayerGame()

	out, wrapped := g.NextPlayer()
	if wrapped {
		t.Fatal("alice to bob must not wrap")
	}
	if out.CurrentPlayer != "bob" {
		t.Fatalf("current = %s, want bob", out.CurrentPlayer)
	}

	out, wrapped = out.NextPlayer()
	if !wrapped {
		t.Fatal("bob back to alice must wrap")
	}
	if out.CurrentPlayer != "alice" {
		t.Fatalf("current = %s, want alice", out.CurrentPlayer)
	}
}

func TestGameHasUser(t *testing.T) {
	g := twoPlayerGame()
	if !g.HasUser("alice") || !g.HasUser("bob") {
		t.Fatal("seated players must be found")
	}
	if g.HasUser("spectator-1") {
		t.Fatal("spectator is not seated")
	}
}
