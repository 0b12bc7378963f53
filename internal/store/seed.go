package store

// SeedDataset returns the built-in sample dataset: two users, four posts and
// five comments. It is the dataset served when no data file is configured.
func SeedDataset() Dataset {
	return Dataset{
		Users: []User{
			{ID: 1, Name: "Alice", Email: "alice@example.com"},
			{ID: 2, Name: "Bob", Email: "bob@example.com"},
		},
		Posts: []Post{
			{ID: 101, UserID: 1, Title: "My First Post", Body: "Hello, world!", CreatedAt: "2025-05-20T10:00:00Z"},
			{ID: 102, UserID: 1, Title: "A Day in the Life", Body: "Today I went to the park...", CreatedAt: "2025-05-20T10:00:00Z"},
			{ID: 201, UserID: 2, Title: "Trip to the Zoo", Body: "I saw a lion...", CreatedAt: "2025-05-20T10:00:00Z"},
			{ID: 202, UserID: 2, Title: "Cooking 101", Body: "Today I baked cookies...", CreatedAt: "2025-05-20T10:00:00Z"},
		},
		Comments: []Comment{
			{ID: 1001, PostID: 101, Author: "Bob", Text: "Great first post!"},
			{ID: 1002, PostID: 101, Author: "Carol", Text: "Welcome to blogging!"},
			{ID: 1003, PostID: 102, Author: "Dave", Text: "Nice day-in-the-life post!"},
			{ID: 2001, PostID: 202, Author: "Alice", Text: "Yum!"},
			{ID: 2002, PostID: 202, Author: "Carol", Text: "Can I have a cookie?"},
		},
	}
}

// Seed builds a Store from SeedDataset.
func Seed() *Store {
	ds := SeedDataset()
	s, err := New(ds.Users, ds.Posts, ds.Comments)
	if err != nil {
		// The seed dataset is a compile-time constant with unique ids.
		panic(err)
	}
	return s
}
