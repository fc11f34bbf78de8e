package api

import (
	"database/sql"

	"weekpulse/internal/database"
	"weekpulse/internal/models"

	"github.com/gofiber/fiber/v2"
)

const blogColumns = "id, title, content, full_content, date, theme, published, created_at, updated_at"

var blogUpdateColumns = []string{
	"title", "content", "full_content", "date", "theme", "published",
}

var validVoteTypes = map[string]bool{"upvote": true, "downvote": true}

func scanBlogPost(row rowScanner) (models.BlogPost, error) {
	var p models.BlogPost
	err := row.Scan(
		&p.ID, &p.Title, &p.Content, &p.FullContent, &p.Date, &p.Theme,
		&p.Published, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func queryBlogPosts(db database.DB, query string, args ...any) ([]models.BlogPost, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []models.BlogPost{}
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// ListBlogPostsHandler is the public listing: published posts only, with
// an optional theme filter.
func ListBlogPostsHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := "SELECT " + blogColumns + " FROM blog_posts WHERE published"
		args := []any{}
		if theme := c.Query("theme"); theme != "" {
			query += " AND theme = ?"
			args = append(args, theme)
		}
		query += " ORDER BY date DESC, created_at DESC"

		posts, err := queryBlogPosts(db, query, args...)
		if err != nil {
			return err
		}
		return c.JSON(posts)
	}
}

// ListBlogThemesHandler returns the distinct themes of published posts.
func ListBlogThemesHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := db.Query(
			"SELECT DISTINCT theme FROM blog_posts WHERE published AND theme IS NOT NULL AND theme != '' ORDER BY theme",
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		themes := []string{}
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				return err
			}
			themes = append(themes, t)
		}
		return c.JSON(themes)
	}
}

// GetBlogPostHandler serves a single published post by slug.
func GetBlogPostHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		post, err := scanBlogPost(db.QueryRow(
			"SELECT "+blogColumns+" FROM blog_posts WHERE id = ? AND published", c.Params("id"),
		))
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Post not found")
		}
		if err != nil {
			return err
		}
		return c.JSON(post)
	}
}

// ListAllBlogPostsHandler is the owner's listing, drafts included.
func ListAllBlogPostsHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		posts, err := queryBlogPosts(db,
			"SELECT "+blogColumns+" FROM blog_posts ORDER BY date DESC, created_at DESC",
		)
		if err != nil {
			return err
		}
		return c.JSON(posts)
	}
}

func CreateBlogPostHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.BlogPostRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if req.ID == "" || req.Title == "" || req.Content == "" || req.Date == "" {
			return fiber.NewError(fiber.StatusBadRequest, "id, title, content and date are required")
		}

		published := true
		if req.Published != nil {
			published = *req.Published
		}

		var taken string
		err := db.QueryRow("SELECT id FROM blog_posts WHERE id = ?", req.ID).Scan(&taken)
		if err == nil {
			return fiber.NewError(fiber.StatusConflict, "Post id already exists")
		}
		if err != sql.ErrNoRows {
			return err
		}

		_, err = db.Exec(
			`INSERT INTO blog_posts (id, title, content, full_content, date, theme, published)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			req.ID, req.Title, req.Content, req.FullContent, req.Date, req.Theme, published,
		)
		if err != nil {
			return err
		}

		post, err := scanBlogPost(db.QueryRow(
			"SELECT "+blogColumns+" FROM blog_posts WHERE id = ?", req.ID,
		))
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(post)
	}
}

func UpdateBlogPostHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body map[string]any
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		set, args, err := buildUpdate(body, blogUpdateColumns)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		args = append(args, c.Params("id"))
		res, err := db.Exec("UPDATE blog_posts SET "+set+", updated_at = CURRENT_TIMESTAMP WHERE id = ?", args...)
		if err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Post not found")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

// DeleteBlogPostHandler removes a post and its votes.
func DeleteBlogPostHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID := c.Params("id")

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		defer tx.Rollback()

		if _, err := tx.Exec("DELETE FROM blog_post_votes WHERE post_id = ?", postID); err != nil {
			return err
		}
		res, err := tx.Exec("DELETE FROM blog_posts WHERE id = ?", postID)
		if err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Post not found")
		}

		if err := tx.Commit(); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

// GetVotesHandler tallies a post's votes.
func GetVotesHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var summary models.VoteSummary
		err := db.QueryRow(
			`SELECT
				COALESCE(SUM(CASE WHEN vote_type = 'upvote' THEN 1 ELSE 0 END), 0),
				COALESCE(SUM(CASE WHEN vote_type = 'downvote' THEN 1 ELSE 0 END), 0)
			FROM blog_post_votes WHERE post_id = ?`,
			c.Params("id"),
		).Scan(&summary.Upvotes, &summary.Downvotes)
		if err != nil {
			return err
		}
		summary.Total = summary.Upvotes - summary.Downvotes
		return c.JSON(summary)
	}
}

// GetMyVoteHandler reports the calling IP's vote on a post, null if none.
func GetMyVoteHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var vote *string
		err := db.QueryRow(
			"SELECT vote_type FROM blog_post_votes WHERE post_id = ? AND ip_address = ?",
			c.Params("id"), c.IP(),
		).Scan(&vote)
		if err != nil && err != sql.ErrNoRows {
			return err
		}
		return c.JSON(fiber.Map{"vote": vote})
	}
}

// SubmitVoteHandler records an anonymous vote keyed by client IP.
// Re-voting updates the existing row in place.
func SubmitVoteHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.VoteRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if !validVoteTypes[req.VoteType] {
			return fiber.NewError(fiber.StatusBadRequest, "vote_type must be upvote or downvote")
		}

		var exists string
		err := db.QueryRow("SELECT id FROM blog_posts WHERE id = ? AND published", c.Params("id")).Scan(&exists)
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Post not found")
		}
		if err != nil {
			return err
		}

		_, err = db.Exec(
			`INSERT INTO blog_post_votes (post_id, ip_address, vote_type) VALUES (?, ?, ?)
			ON CONFLICT(post_id, ip_address) DO UPDATE SET vote_type = excluded.vote_type`,
			c.Params("id"), c.IP(), req.VoteType,
		)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

// RemoveVoteHandler deletes the calling IP's vote on a post.
func RemoveVoteHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := db.Exec(
			"DELETE FROM blog_post_votes WHERE post_id = ? AND ip_address = ?",
			c.Params("id"), c.IP(),
		)
		if err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "No vote to remove")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
