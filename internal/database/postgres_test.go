package database

import "testing"

func TestRewritePlaceholders(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{
			"SELECT id FROM scheduled_tasks WHERE date >= ? AND date <= ?",
			"SELECT id FROM scheduled_tasks WHERE date >= $1 AND date <= $2",
		},
		{
			"INSERT INTO pulse_notes (content) VALUES (?)",
			"INSERT INTO pulse_notes (content) VALUES ($1)",
		},
		{
			"UPDATE scheduled_tasks SET title = ?, completed = ?, color = ? WHERE id = ?",
			"UPDATE scheduled_tasks SET title = $1, completed = $2, color = $3 WHERE id = $4",
		},
		{
			"SELECT 1 FROM blog_posts",
			"SELECT 1 FROM blog_posts",
		},
	}
	for _, c := range cases {
		if got := rewritePlaceholders(c.in); got != c.want {
			t.Fatalf("rewritePlaceholders(%q):\nexpected %q\ngot      %q", c.in, c.want, got)
		}
	}
}

func TestRewritePlaceholdersLeavesQuotedLiterals(t *testing.T) {
	in := "SELECT id FROM blog_posts WHERE title = 'what?' AND theme = ?"
	want := "SELECT id FROM blog_posts WHERE title = 'what?' AND theme = $1"
	if got := rewritePlaceholders(in); got != want {
		t.Fatalf("Expected %q, got %q", want, got)
	}

	// A literal containing several question marks must not consume
	// placeholder numbers.
	in = "UPDATE blog_posts SET content = '??' WHERE id = ? AND date = ?"
	want = "UPDATE blog_posts SET content = '??' WHERE id = $1 AND date = $2"
	if got := rewritePlaceholders(in); got != want {
		t.Fatalf("Expected %q, got %q", want, got)
	}
}

func TestAppendReturningID(t *testing.T) {
	in := "INSERT INTO templates (name) VALUES ($1)"
	want := "INSERT INTO templates (name) VALUES ($1) RETURNING id"
	if got := appendReturningID(in); got != want {
		t.Fatalf("Expected %q, got %q", want, got)
	}

	// Already has a RETURNING clause: untouched.
	in = "INSERT INTO templates (name) VALUES ($1) RETURNING id"
	if got := appendReturningID(in); got != in {
		t.Fatalf("Expected %q unchanged, got %q", in, got)
	}

	// Upsert statements carry the clause through unchanged semantics.
	in = "INSERT INTO blog_post_votes (post_id, ip_address, vote_type) VALUES ($1, $2, $3) ON CONFLICT(post_id, ip_address) DO UPDATE SET vote_type = excluded.vote_type"
	want = in + " RETURNING id"
	if got := appendReturningID(in); got != want {
		t.Fatalf("Expected %q, got %q", want, got)
	}

	// Non-INSERT statements pass through.
	for _, q := range []string{
		"UPDATE templates SET name = $1 WHERE id = $2",
		"DELETE FROM templates WHERE id = $1",
		"SELECT id FROM templates",
	} {
		if got := appendReturningID(q); got != q {
			t.Fatalf("Expected %q unchanged, got %q", q, got)
		}
	}

	// Leading whitespace and lowercase keywords still count as INSERTs.
	in = "  insert into pulse_notes (content) values ($1)"
	if got := appendReturningID(in); got != in+" RETURNING id" {
		t.Fatalf("Expected RETURNING appended to %q, got %q", in, got)
	}
}

func TestGeneratedID(t *testing.T) {
	if got := generatedID(int64(42)); got != 42 {
		t.Fatalf("Expected 42, got %d", got)
	}
	// Blog post ids are caller-assigned slugs; there is no numeric id.
	if got := generatedID("hello-world"); got != 0 {
		t.Fatalf("Expected 0 for a text id, got %d", got)
	}
	if got := generatedID(nil); got != 0 {
		t.Fatalf("Expected 0 for nil, got %d", got)
	}
}

func TestIsInsert(t *testing.T) {
	if !isInsert("INSERT INTO t (a) VALUES ($1)") {
		t.Fatal("Expected INSERT to be detected")
	}
	if !isInsert("\n\tinsert into t (a) values ($1)") {
		t.Fatal("Expected lowercase INSERT with leading whitespace to be detected")
	}
	if isInsert("UPDATE t SET a = $1") {
		t.Fatal("Expected UPDATE not to be detected as INSERT")
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	db, err := Open("", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	if _, ok := db.(*sqliteDB); !ok {
		t.Fatalf("Expected SQLite backend without DATABASE_URL, got %T", db)
	}
}
