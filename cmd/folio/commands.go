package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oubasys/portfolio/internal/client"
	"github.com/oubasys/portfolio/internal/models"
)

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}

// --- auth ---

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in as the portfolio admin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print("Password: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return err
		}

		if err := session.SignIn(cmd.Context(), args[0], string(raw)); err != nil {
			return err
		}
		fmt.Println("Signed in.")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and drop the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		session.SignOut(cmd.Context())
		fmt.Println("Signed out.")
		return nil
	},
}

// --- profile ---

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit the profile",
}

var profileGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the profile as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := store.Profile(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(p)
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace the profile from a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		if file == "" {
			return fmt.Errorf("--file is required")
		}
		raw, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		var p models.Profile
		if err := json.Unmarshal(raw, &p); err != nil {
			return fmt.Errorf("invalid JSON: %w", err)
		}
		if err := editor.SaveProfile(cmd.Context(), &p); err != nil {
			return err
		}
		fmt.Println("Profile saved.")
		return nil
	},
}

func init() {
	profileSetCmd.Flags().String("file", "", "JSON file holding the full profile")
	profileCmd.AddCommand(profileGetCmd)
	profileCmd.AddCommand(profileSetCmd)
}

// --- skills ---

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Manage skills",
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills grouped by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		cats, err := store.SkillCategories(cmd.Context())
		if err != nil {
			return err
		}
		for _, cat := range cats {
			fmt.Printf("%s (%s)\n", cat.Title, cat.Icon)
			for _, sk := range cat.Skills {
				fmt.Printf("  %3d  %s\n", sk.ID, sk.Name)
			}
		}
		return nil
	},
}

var skillsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		icon, _ := cmd.Flags().GetString("icon")
		level, _ := cmd.Flags().GetInt("level")

		sk := models.Skill{Name: args[0], Category: category, Icon: icon, Level: level}
		if err := editor.CreateSkill(cmd.Context(), &sk); err != nil {
			return err
		}
		fmt.Printf("Added skill %d.\n", sk.ID)
		return nil
	},
}

var skillsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return editor.DeleteSkill(cmd.Context(), id, confirm("skill "+args[0]))
	},
}

func init() {
	skillsAddCmd.Flags().String("category", "", "category, one of: "+strings.Join(client.SuggestedSkillCategories, ", "))
	skillsAddCmd.Flags().String("icon", "", "icon, one of: "+strings.Join(client.SkillIcons, ", "))
	skillsAddCmd.Flags().Int("level", 0, "proficiency level")
	skillsCmd.AddCommand(skillsListCmd)
	skillsCmd.AddCommand(skillsAddCmd)
	skillsCmd.AddCommand(skillsRmCmd)
}

// --- projects ---

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := store.Projects(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(rows)
	},
}

var projectsAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description, _ := cmd.Flags().GetString("description")
		url, _ := cmd.Flags().GetString("url")
		techs, _ := cmd.Flags().GetString("tech")

		p := models.Project{Title: args[0], Description: description, ProjectURL: url}
		if techs != "" {
			for _, t := range strings.Split(techs, ",") {
				p.Technologies = append(p.Technologies, strings.TrimSpace(t))
			}
		}
		if err := editor.CreateProject(cmd.Context(), &p); err != nil {
			return err
		}
		fmt.Printf("Added project %d.\n", p.ID)
		return nil
	},
}

var projectsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return editor.DeleteProject(cmd.Context(), id, confirm("project "+args[0]))
	},
}

func init() {
	projectsAddCmd.Flags().String("description", "", "project description")
	projectsAddCmd.Flags().String("url", "", "project link")
	projectsAddCmd.Flags().String("tech", "", "comma-separated technologies")
	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsAddCmd)
	projectsCmd.AddCommand(projectsRmCmd)
}

// --- experiences ---

var experiencesCmd = &cobra.Command{
	Use:   "experiences",
	Short: "Manage professional experiences",
}

var experiencesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List professional experiences",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := store.Experiences(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(rows)
	},
}

var experiencesAddCmd = &cobra.Command{
	Use:   "add <role>",
	Short: "Add a professional experience",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		company, _ := cmd.Flags().GetString("company")
		location, _ := cmd.Flags().GetString("location")
		period, _ := cmd.Flags().GetString("period")
		kind, _ := cmd.Flags().GetString("type")

		ex := models.Experience{
			Role:     args[0],
			Company:  company,
			Location: location,
			Period:   period,
			Type:     kind,
		}
		if err := editor.CreateExperience(cmd.Context(), &ex); err != nil {
			return err
		}
		fmt.Printf("Added experience %d.\n", ex.ID)
		return nil
	},
}

var experiencesRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an experience or education entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return editor.DeleteExperience(cmd.Context(), id, confirm("experience "+args[0]))
	},
}

func init() {
	experiencesAddCmd.Flags().String("company", "", "company name")
	experiencesAddCmd.Flags().String("location", "", "location")
	experiencesAddCmd.Flags().String("period", "", "time period, e.g. 2024")
	experiencesAddCmd.Flags().String("type", "Stage", "entry kind")
	experiencesCmd.AddCommand(experiencesListCmd)
	experiencesCmd.AddCommand(experiencesAddCmd)
	experiencesCmd.AddCommand(experiencesRmCmd)
}

// --- education ---

var educationCmd = &cobra.Command{
	Use:   "education",
	Short: "Manage education entries",
}

var educationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List education entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := store.Education(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(rows)
	},
}

var educationAddCmd = &cobra.Command{
	Use:   "add <degree>",
	Short: "Add an education entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		school, _ := cmd.Flags().GetString("school")
		location, _ := cmd.Flags().GetString("location")
		period, _ := cmd.Flags().GetString("period")
		description, _ := cmd.Flags().GetString("description")

		ed := client.EducationEntry{
			Degree:      args[0],
			School:      school,
			Location:    location,
			Period:      period,
			Description: description,
		}
		if err := editor.CreateEducation(cmd.Context(), &ed); err != nil {
			return err
		}
		fmt.Printf("Added education entry %d.\n", ed.ID)
		return nil
	},
}

func init() {
	educationAddCmd.Flags().String("school", "", "school name")
	educationAddCmd.Flags().String("location", "", "location")
	educationAddCmd.Flags().String("period", "", "time period, e.g. 2024 – 2026")
	educationAddCmd.Flags().String("description", "", "description")
	educationCmd.AddCommand(educationListCmd)
	educationCmd.AddCommand(educationAddCmd)
}

// --- reviews ---

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "Moderate visitor testimonials",
}

var reviewsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all testimonials, published or not",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := editor.AllReviews(cmd.Context())
		if err != nil {
			return err
		}
		for _, rv := range rows {
			state := " "
			if rv.IsPublished {
				state = "*"
			}
			fmt.Printf("%s %3d  %-20s  %d/5  %s\n", state, rv.ID, rv.Author, rv.Rating, rv.Content)
		}
		return nil
	},
}

var reviewsPublishCmd = &cobra.Command{
	Use:   "publish <id>",
	Short: "Toggle a testimonial's published state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		rv, err := editor.TogglePublishReview(cmd.Context(), id)
		if err != nil {
			return err
		}
		if rv.IsPublished {
			fmt.Printf("Review %d published.\n", rv.ID)
		} else {
			fmt.Printf("Review %d unpublished.\n", rv.ID)
		}
		return nil
	},
}

var reviewsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a testimonial",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return editor.DeleteReview(cmd.Context(), id, confirm("review "+args[0]))
	},
}

func init() {
	reviewsCmd.AddCommand(reviewsListCmd)
	reviewsCmd.AddCommand(reviewsPublishCmd)
	reviewsCmd.AddCommand(reviewsRmCmd)
}

// --- knowledge ---

var knowledgeCmd = &cobra.Command{
	Use:   "knowledge",
	Short: "Manage the assistant knowledge base",
}

var knowledgeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List knowledge items",
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := editor.Knowledge(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(rows)
	},
}

var knowledgeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a knowledge item",
	RunE: func(cmd *cobra.Command, args []string) error {
		question, _ := cmd.Flags().GetString("question")
		answer, _ := cmd.Flags().GetString("answer")

		k := models.KnowledgeItem{Question: question, Answer: answer}
		if err := editor.CreateKnowledge(cmd.Context(), &k); err != nil {
			return err
		}
		fmt.Printf("Added knowledge item %d.\n", k.ID)
		return nil
	},
}

var knowledgeRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a knowledge item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return editor.DeleteKnowledge(cmd.Context(), id, confirm("knowledge item "+args[0]))
	},
}

func init() {
	knowledgeAddCmd.Flags().String("question", "", "comma-separated keywords to match")
	knowledgeAddCmd.Flags().String("answer", "", "reply material")
	knowledgeCmd.AddCommand(knowledgeListCmd)
	knowledgeCmd.AddCommand(knowledgeAddCmd)
	knowledgeCmd.AddCommand(knowledgeRmCmd)
}

// --- chat ---

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the portfolio assistant",
	RunE: func(cmd *cobra.Command, args []string) error {
		chat := client.NewChat(api)
		chat.Open()
		defer chat.Close()

		fmt.Println("Type a message, or an empty line to quit.")
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				break
			}
			reply, err := chat.Send(cmd.Context(), line)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}
			fmt.Println(reply)
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(experiencesCmd)
	rootCmd.AddCommand(educationCmd)
	rootCmd.AddCommand(reviewsCmd)
	rootCmd.AddCommand(knowledgeCmd)
	rootCmd.AddCommand(chatCmd)
}
