package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ayanchyaziz123/career-AI/internal/ai"
	"github.com/ayanchyaziz123/career-AI/internal/ai/gemini"
	"github.com/ayanchyaziz123/career-AI/internal/analytics"
	"github.com/ayanchyaziz123/career-AI/internal/career"
	"github.com/ayanchyaziz123/career-AI/internal/logger"
	"github.com/ayanchyaziz123/career-AI/internal/profile"
	"github.com/ayanchyaziz123/career-AI/internal/scoring"
	"github.com/ayanchyaziz123/career-AI/internal/secrets"
	"github.com/ayanchyaziz123/career-AI/internal/session"
)

const (
	PromptResults   = "Browse career matches"
	PromptDashboard = "Dashboard"
	PromptCompare   = "Compare selected careers"
	PromptGuidance  = "AI guidance for your top match"
	PromptReanalyze = "Edit profile and re-analyze"
	PromptExit      = "Exit"

	PromptContinue    = "Continue"
	PromptAddSkill    = "Add another skill"
	PromptRemoveSkill = "Remove a skill"

	PromptToggleSaved   = "Toggle saved"
	PromptToggleCompare = "Toggle compare"
	PromptEditSkill     = "Update a skill level"
	PromptTogglePhase   = "Toggle a roadmap phase"
	PromptBack          = "Back"
)

var errExit = errors.New("exit requested")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive career analysis session",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("scoring-url", "", "scoring service endpoint (default is "+scoring.DefaultURL+")")
	runCmd.Flags().String("catalog-file", "", "career catalog YAML (default is the embedded catalog)")
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	viper.BindPFlag("scoring.url", cmd.Flags().Lookup("scoring-url"))
	viper.BindPFlag("catalog-file", cmd.Flags().Lookup("catalog-file"))

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	cat, err := loadCatalog(viper.GetString("catalog-file"))
	if err != nil {
		zlog.Fatal("loading the career catalog", zap.Error(err))
	}

	scoringURL := viper.GetString("scoring.url")
	client := scoring.New(scoringURL, zlog)

	advisor := prepareAdvisor(ctx, config.AI, zlog)

	sess := session.New(cat, client, zlog)

	zlog.Info("starting the career-ai session",
		zap.String("version", version),
		zap.Int("catalog_careers", cat.Len()),
	)

	if err := collectProfile(sess.Profile()); err != nil {
		zlog.Fatal("collecting the profile", zap.Error(err))
	}

	fmt.Println("\nAnalyzing your profile...")
	sess.Analyze(ctx)

	if err := mainLoop(ctx, sess, advisor, zlog); err != nil && !errors.Is(err, errExit) {
		zlog.Fatal("exiting", zap.Error(err))
	}
}

// collectProfile walks the user through skills, interests and the bracketed
// fields. Prompt errors (including interrupts) abort the session.
func collectProfile(store *profile.Store) error {
	fmt.Println("Describe yourself. Skills first, one per line.")

	for {
		prompt := promptui.Prompt{Label: "Add a skill (leave empty to finish)"}
		value, err := prompt.Run()
		if err != nil {
			return err
		}
		if strings.TrimSpace(value) == "" {
			break
		}
		store.AddSkill(value)
	}

review:
	for {
		skills := store.Profile().Skills
		if len(skills) == 0 {
			break
		}

		reviewPrompt := promptui.Select{
			Label: fmt.Sprintf("Your skills: %s", strings.Join(skills, ", ")),
			Items: []string{PromptContinue, PromptAddSkill, PromptRemoveSkill},
		}
		_, action, err := reviewPrompt.Run()
		if err != nil {
			return err
		}

		switch action {
		case PromptContinue:
			break review
		case PromptAddSkill:
			prompt := promptui.Prompt{Label: "Skill"}
			value, err := prompt.Run()
			if err != nil {
				return err
			}
			store.AddSkill(value)
		case PromptRemoveSkill:
			removePrompt := promptui.Select{Label: "Remove which skill?", Items: skills}
			_, name, err := removePrompt.Run()
			if err != nil {
				return err
			}
			store.RemoveSkill(name)
		}
	}

	interestsPrompt := promptui.Prompt{Label: "Interests & goals"}
	interests, err := interestsPrompt.Run()
	if err != nil {
		return err
	}
	store.SetInterests(interests)

	experiencePrompt := promptui.Select{Label: "Years of experience", Items: profile.ExperienceOptions}
	_, experience, err := experiencePrompt.Run()
	if err != nil {
		return err
	}
	store.SetExperience(experience)

	educationPrompt := promptui.Select{Label: "Education", Items: profile.EducationOptions}
	_, education, err := educationPrompt.Run()
	if err != nil {
		return err
	}
	store.SetEducation(education)

	workStylePrompt := promptui.Select{Label: "Work style", Items: profile.WorkStyleOptions}
	_, workStyle, err := workStylePrompt.Run()
	if err != nil {
		return err
	}
	store.SetWorkStyle(workStyle)

	return nil
}

func mainLoop(ctx context.Context, sess *session.Session, advisor ai.Advisor, zlog *zap.Logger) error {
	mainPrompt := promptui.Select{
		Label: "What next?",
		Items: []string{PromptResults, PromptDashboard, PromptCompare, PromptGuidance, PromptReanalyze, PromptExit},
	}

	for {
		_, action, err := mainPrompt.Run()
		if err != nil {
			return err
		}

		if err := handleAction(ctx, action, sess, advisor, zlog); err != nil {
			return err
		}
	}
}

func handleAction(ctx context.Context, action string, sess *session.Session, advisor ai.Advisor, zlog *zap.Logger) error {
	switch action {
	case PromptResults:
		return browseResults(sess)
	case PromptDashboard:
		renderDashboard(os.Stdout, sess)
		return nil
	case PromptCompare:
		renderCompare(os.Stdout, sess)
		return nil
	case PromptGuidance:
		return showGuidance(ctx, sess, advisor, zlog)
	case PromptReanalyze:
		if err := collectProfile(sess.Profile()); err != nil {
			return err
		}
		fmt.Println("\nAnalyzing your profile...")
		sess.Analyze(ctx)
		return nil
	case PromptExit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// browseResults shows the match table and drills into career detail views
// until the user backs out.
func browseResults(sess *session.Session) error {
	for {
		renderResults(os.Stdout, sess)

		items := sess.Careers().Items()
		if len(items) == 0 {
			return nil
		}

		labels := make([]string, 0, len(items)+1)
		for _, m := range items {
			labels = append(labels, m.Title)
		}
		labels = append(labels, PromptBack)

		careerPrompt := promptui.Select{Label: "View a career", Items: labels}
		idx, selected, err := careerPrompt.Run()
		if err != nil {
			return err
		}
		if selected == PromptBack {
			return nil
		}

		if err := careerDetail(sess, items[idx].ID); err != nil {
			return err
		}
	}
}

// careerDetail renders one career and applies the user's mutations. The
// match is re-fetched each turn because mutations replace the record.
func careerDetail(sess *session.Session, id string) error {
	for {
		m := sess.Careers().FindByID(id)
		if m == nil {
			return nil
		}

		renderDetail(os.Stdout, m, sess.Compare().Contains(id))

		actionPrompt := promptui.Select{
			Label: "Actions",
			Items: []string{PromptToggleSaved, PromptToggleCompare, PromptEditSkill, PromptTogglePhase, PromptBack},
		}
		_, action, err := actionPrompt.Run()
		if err != nil {
			return err
		}

		switch action {
		case PromptBack:
			return nil
		case PromptToggleSaved:
			sess.Careers().ToggleSaved(id)
		case PromptToggleCompare:
			sess.Compare().Toggle(id)
			if !sess.Compare().Contains(id) && sess.Compare().Len() == 0 {
				fmt.Println("Removed from comparison.")
			}
		case PromptEditSkill:
			if err := editSkillLevel(sess, m); err != nil {
				return err
			}
		case PromptTogglePhase:
			if len(m.Roadmap) == 0 {
				continue
			}
			titles := make([]string, 0, len(m.Roadmap))
			for i, phase := range m.Roadmap {
				titles = append(titles, fmt.Sprintf("%d. %s", i+1, phase.Title))
			}
			phasePrompt := promptui.Select{Label: "Toggle which phase?", Items: titles}
			idx, _, err := phasePrompt.Run()
			if err != nil {
				return err
			}
			sess.Careers().ToggleRoadmapPhase(id, idx)
		}
	}
}

func editSkillLevel(sess *session.Session, m *career.Match) error {
	names := make([]string, 0, len(m.Skills))
	for _, s := range m.Skills {
		names = append(names, s.Name)
	}
	if len(names) == 0 {
		return nil
	}

	skillPrompt := promptui.Select{Label: "Which skill?", Items: names}
	_, name, err := skillPrompt.Run()
	if err != nil {
		return err
	}

	levelPrompt := promptui.Prompt{
		Label: fmt.Sprintf("Your level for %s (0-%d)", name, career.MaxLevel),
		Validate: func(input string) error {
			level, err := strconv.Atoi(strings.TrimSpace(input))
			if err != nil || level < 0 || level > career.MaxLevel {
				return fmt.Errorf("enter a number between 0 and %d", career.MaxLevel)
			}
			return nil
		},
	}
	value, err := levelPrompt.Run()
	if err != nil {
		return err
	}

	level, _ := strconv.Atoi(strings.TrimSpace(value))
	sess.Careers().UpdateSkillLevel(m.ID, name, level)
	return nil
}

func showGuidance(ctx context.Context, sess *session.Session, advisor ai.Advisor, zlog *zap.Logger) error {
	if advisor == nil {
		fmt.Println("AI guidance is not configured. Enable the ai section in career-ai.yaml.")
		return nil
	}

	items := sess.Careers().Items()
	top := analytics.TopMatch(items)
	if top == nil {
		fmt.Println("No results yet. Run an analysis first.")
		return nil
	}

	fmt.Printf("Asking for guidance on %s...\n\n", top.Title)

	guidance, err := advisor.Advise(ctx, &ai.Request{
		Profile:      sess.Profile().Profile(),
		Match:        top,
		Readiness:    analytics.CareerReadiness(top),
		PriorityGaps: analytics.PriorityGaps(items),
	})
	if err != nil {
		zlog.Warn("AI guidance failed", zap.Error(err))
		fmt.Println("Guidance is unavailable right now.")
		return nil
	}

	fmt.Println(guidance.Text)
	fmt.Println()
	return nil
}

// prepareAdvisor builds the optional Gemini advisor. Any configuration or
// setup problem disables guidance with a warning instead of failing the run.
func prepareAdvisor(ctx context.Context, cfg *AIConfig, zlog *zap.Logger) ai.Advisor {
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		zlog.Warn("unsupported ai provider; guidance disabled", zap.String("provider", cfg.Provider))
		return nil
	}

	if cfg.Gemini == nil {
		zlog.Warn("gemini configuration is required when ai guidance is enabled")
		return nil
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		zlog.Warn("skipping AI guidance",
			zap.Error(err),
			zap.String("hint", "set ai.gemini.api-key-file or GEMINI_API_KEY_FILE"),
		)
		return nil
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		zlog.Warn("building gemini generator failed; guidance disabled", zap.Error(err))
		return nil
	}

	advLogger := logger.WithCommonFields(zlog, "gemini", generator.Model())

	return gemini.NewAdvisor(generator, advLogger, cfg.Gemini.MaxRetries, cfg.Gemini.MaxLogLength)
}
