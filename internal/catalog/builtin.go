package catalog

import "github.com/abhisek/miguel/internal/shadow"

// Default returns the built-in content pools.
func Default() *Catalog {
	return &Catalog{
		WordSearch: []string{
			"SOL", "LUA", "MAR", "CASA", "GATO", "BOLA", "PATO", "FLOR",
			"ARCO", "UVA", "PEIXE", "LIVRO", "NUVEM", "FESTA", "AMIGO",
		},
		Words: []SyllableWord{
			{Level: 1, Syllables: []string{"CA", "SA"}, Emoji: "🏠"},
			{Level: 1, Syllables: []string{"BO", "LA"}, Emoji: "⚽"},
			{Level: 1, Syllables: []string{"GA", "TO"}, Emoji: "🐱"},
			{Level: 1, Syllables: []string{"PA", "TO"}, Emoji: "🦆"},
			{Level: 2, Syllables: []string{"BO", "NE", "CA"}, Emoji: "🪆"},
			{Level: 2, Syllables: []string{"MA", "CA", "CO"}, Emoji: "🐒"},
			{Level: 2, Syllables: []string{"SA", "PA", "TO"}, Emoji: "👟"},
			{Level: 2, Syllables: []string{"BA", "NA", "NA"}, Emoji: "🍌"},
			{Level: 3, Syllables: []string{"PE", "TE", "CA"}, Emoji: "🏸"},
			{Level: 3, Syllables: []string{"JA", "NE", "LA"}, Emoji: "🪟"},
			{Level: 3, Syllables: []string{"PA", "PAI"}, Emoji: "👨"},
			{Level: 3, Syllables: []string{"CO", "E", "LHO"}, Emoji: "🐰"},
			{Level: 4, Syllables: []string{"BOR", "BO", "LE", "TA"}, Emoji: "🦋"},
			{Level: 4, Syllables: []string{"TAR", "TA", "RU", "GA"}, Emoji: "🐢"},
			{Level: 4, Syllables: []string{"MO", "RAN", "GO"}, Emoji: "🍓"},
			{Level: 4, Syllables: []string{"E", "LE", "FAN", "TE"}, Emoji: "🐘"},
		},
		Shadows: []shadow.Item{
			{Name: "gato", Emoji: "🐱"},
			{Name: "cachorro", Emoji: "🐶"},
			{Name: "peixe", Emoji: "🐟"},
			{Name: "passaro", Emoji: "🐦"},
			{Name: "arvore", Emoji: "🌳"},
			{Name: "estrela", Emoji: "⭐"},
			{Name: "carro", Emoji: "🚗"},
			{Name: "aviao", Emoji: "✈️"},
			{Name: "elefante", Emoji: "🐘"},
			{Name: "borboleta", Emoji: "🦋"},
		},
		Backgrounds: []Background{
			{Name: "fazenda", Tiles: []string{"🐄", "🐖", "🐑", "🐓", "🌾", "🚜", "🐴", "🏡"}},
			{Name: "oceano", Tiles: []string{"🐳", "🐬", "🐙", "🦀", "🐠", "🐚", "🦈", "⛵"}},
			{Name: "espaco", Tiles: []string{"🌞", "🌍", "🌙", "⭐", "🚀", "🪐", "☄️", "👽"}},
			{Name: "jardim", Tiles: []string{"🌷", "🌻", "🌹", "🐝", "🐞", "🦋", "🐛", "🌳"}},
		},
		Stories: []Fallback{
			{
				Title: "The Brave Little Boat",
				Body:  "A little boat was scared of the big waves. Its friends the fish swam beside it, and together they reached the calm bay before sunset.",
				Moral: "Friends make hard things easier.",
			},
			{
				Title: "The Seed That Waited",
				Body:  "A tiny seed waited in the ground all winter. When spring came, sun and rain helped it grow into a tall sunflower that smiled at everyone.",
				Moral: "Good things take time.",
			},
		},
		Devotionals: []Fallback{
			{
				Title: "God Made Everything",
				Body:  "In the beginning God made the sun, the moon, the animals and you. Everything He made is good.",
				Moral: "Say thank you to God for one thing you see today.",
			},
			{
				Title: "Love Your Neighbor",
				Body:  "Jesus taught us to love others like we love ourselves. Sharing a toy or helping a friend is a way to show love.",
				Moral: "Do one kind thing for someone today.",
			},
		},
	}
}
