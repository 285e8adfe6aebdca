package model

// DefaultCatalog returns the built-in seed catalog. It is used on first run
// and whenever the persisted record is missing or unreadable.
func DefaultCatalog() Catalog {
	return Catalog{Categories: []Category{
		{
			ID: "animals", Name: "Animals", Glyph: "🦁", Color: "amber",
			Items: []Item{
				{ID: "animals-dog", Name: "Dog", NameES: "Perro", Glyph: "🐕", Color: "amber"},
				{ID: "animals-cat", Name: "Cat", NameES: "Gato", Glyph: "🐈", Color: "amber"},
				{ID: "animals-elephant", Name: "Elephant", NameES: "Elefante", Glyph: "🐘", Color: "amber"},
				{ID: "animals-lion", Name: "Lion", NameES: "León", Glyph: "🦁", Color: "amber"},
				{ID: "animals-turtle", Name: "Turtle", NameES: "Tortuga", Glyph: "🐢", Color: "amber"},
			},
		},
		{
			ID: "fruits", Name: "Fruits", Glyph: "🍎", Color: "rose",
			Items: []Item{
				{ID: "fruits-apple", Name: "Apple", NameES: "Manzana", Glyph: "🍎", Color: "rose"},
				{ID: "fruits-banana", Name: "Banana", NameES: "Plátano", Glyph: "🍌", Color: "rose"},
				{ID: "fruits-grape", Name: "Grape", NameES: "Uva", Glyph: "🍇", Color: "rose"},
				{ID: "fruits-orange", Name: "Orange", NameES: "Naranja", Glyph: "🍊", Color: "rose"},
			},
		},
		{
			ID: "colors", Name: "Colors", Glyph: "🌈", Color: "sky",
			Items: []Item{
				{ID: "colors-red", Name: "Red", NameES: "Rojo", Glyph: "🔴", Color: "sky"},
				{ID: "colors-blue", Name: "Blue", NameES: "Azul", Glyph: "🔵", Color: "sky"},
				{ID: "colors-green", Name: "Green", NameES: "Verde", Glyph: "🟢", Color: "sky"},
				{ID: "colors-yellow", Name: "Yellow", NameES: "Amarillo", Glyph: "🟡", Color: "sky"},
			},
		},
		{
			ID: "shapes", Name: "Shapes", Glyph: "🔷", Color: "violet",
			Items: []Item{
				{ID: "shapes-circle", Name: "Circle", NameES: "Círculo", Glyph: "⭕", Color: "violet"},
				{ID: "shapes-square", Name: "Square", NameES: "Cuadrado", Glyph: "🟦", Color: "violet"},
				{ID: "shapes-triangle", Name: "Triangle", NameES: "Triángulo", Glyph: "🔺", Color: "violet"},
				{ID: "shapes-star", Name: "Star", NameES: "Estrella", Glyph: "⭐", Color: "violet"},
			},
		},
	}}
}
