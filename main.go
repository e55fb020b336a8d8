package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/portfolio/internal/i18n"
	"github.com/Zachkp/portfolio/internal/marquee"
	"github.com/Zachkp/portfolio/internal/sizing"
)

const skillsLoopID = "skills-loop"

type server struct {
	cfg        Config
	stats      *statsStore
	catalog    *i18n.Catalog
	sizer      *sizing.Estimator
	contact    *contactSender
	adminToken string
	now        func() time.Time
}

func newServer(cfg Config) (*server, error) {
	catalog, err := i18n.Load()
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}
	stats, err := openStats(cfg.StatsDSN)
	if err != nil {
		return nil, err
	}
	return &server{
		cfg:        cfg,
		stats:      stats,
		catalog:    catalog,
		sizer:      sizing.New(os.DirFS(".")),
		contact:    newContactSender(cfg),
		adminToken: randomToken(),
		now:        time.Now,
	}, nil
}

func (s *server) Close() error {
	return s.stats.Close()
}

func main() {
	cfg := LoadConfig()
	srv, err := newServer(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.pruneVisitors(ctx, time.Hour)

	log.Printf("Admin access available at: /admin/login")
	if gin.Mode() == gin.DebugMode {
		log.Printf("Admin token (dev only): %s", srv.adminToken)
	}
	log.Printf("Contact submissions go out via %s", srv.contact.Channel())

	if err := srv.router().Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func (s *server) router() *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob(s.cfg.TemplatesGlob)

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	r.Use(s.visitorTrackingMiddleware())

	r.GET("/", s.handleHome)

	// HTMX fragment: the skills loop sized to the client's container
	r.GET("/fragments/skills-loop", s.handleSkillsLoop)

	// HTMX Contact form endpoint - returns just the form HTML
	r.GET("/contact-form", func(c *gin.Context) {
		tr := s.translator(c)
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": tr.Get("contact.heading"),
			"blurb": SITE.Contact.Blurb,
		})
	})

	r.POST("/contact", s.handleContact)

	s.setupAdminRoutes(r)
	return r
}

func (s *server) translator(c *gin.Context) i18n.Translator {
	return s.catalog.Match(c.GetHeader("Accept-Language"))
}

func (s *server) handleHome(c *gin.Context) {
	tr := s.translator(c)
	mobile := marquee.IsMobile(marquee.DeviceHints{UserAgent: c.GetHeader("User-Agent")})

	loop, err := s.skillsLoop(c.Request.Context(), tr, s.cfg.LoopContainerWidth, mobile)
	if err != nil {
		log.Printf("Error rendering skills loop: %v", err)
	}
	roles, _ := json.Marshal(SITE.Roles)

	c.HTML(http.StatusOK, "index.html", gin.H{
		"lang":        tr.Lang(),
		"title":       SITE.Title(),
		"description": SITE.Intro.Subtext,
		"site":        SITE,
		"roles":       string(roles),
		"skillsLoop":  loop,
		"headings": gin.H{
			"skills":   tr.Get("skills.heading"),
			"projects": tr.Get("projects.heading"),
			"contact":  tr.Get("contact.heading"),
		},
	})
}

func (s *server) handleSkillsLoop(c *gin.Context) {
	width := s.cfg.LoopContainerWidth
	if v := c.Query("width"); v != "" {
		w, err := strconv.ParseFloat(v, 64)
		if err != nil || w <= 0 || w > 10000 {
			c.String(http.StatusBadRequest, "invalid width")
			return
		}
		width = w
	}
	mobile := marquee.IsMobile(marquee.DeviceHints{
		ViewportWidth: width,
		UserAgent:     c.GetHeader("User-Agent"),
	})

	component, err := s.skillsLoopComponent(c.Request.Context(), s.translator(c), width, mobile)
	if err != nil {
		log.Printf("Error sizing skills loop: %v", err)
		c.String(http.StatusInternalServerError, "")
		return
	}
	renderComponent(c, http.StatusOK, component)
}

// skillsLoopConfig is the loop shown in the skills section.
func skillsLoopConfig(label string) marquee.Config {
	cfg := marquee.DefaultConfig()
	cfg.Speed = 60
	cfg.Gap = 40
	cfg.LogoHeight = 24
	cfg.FadeOut = true
	cfg.ScaleOnHover = true
	cfg.StopOnDrag = false
	cfg.AriaLabel = label
	return cfg
}

func (s *server) skillsLoopComponent(ctx context.Context, tr i18n.Translator, width float64, mobile bool) (templ.Component, error) {
	cfg := skillsLoopConfig(tr.Get("skills.loop.label"))
	items := SITE.SkillItems()

	layout, err := s.sizer.Layout(ctx, items, cfg, width)
	if err != nil {
		return nil, fmt.Errorf("estimate layout: %w", err)
	}
	bootstrap, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode loop config: %w", err)
	}
	return marquee.Track(marquee.Props{
		ID:        skillsLoopID,
		Config:    cfg,
		Items:     items,
		Layout:    layout,
		Mobile:    mobile,
		Bootstrap: string(bootstrap),
	}), nil
}

func (s *server) skillsLoop(ctx context.Context, tr i18n.Translator, width float64, mobile bool) (any, error) {
	component, err := s.skillsLoopComponent(ctx, tr, width, mobile)
	if err != nil {
		return "", err
	}
	return componentHTML(ctx, component)
}

// Handle contact form submission with HTMX
func (s *server) handleContact(c *gin.Context) {
	tr := s.translator(c)

	var form ContactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": tr.Get("contact.invalid"),
		})
		return
	}

	id := uuid.NewString()
	channel, link, err := s.contact.Deliver(c.Request.Context(), form)
	if err != nil {
		log.Printf("Error delivering contact %s via %s: %v", id, channel, err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": tr.Get("contact.error"),
		})
		return
	}
	if err := s.stats.RecordContact(id, channel, s.now()); err != nil {
		log.Printf("Error recording contact %s: %v", id, err)
	}

	if link != "" {
		c.Header("HX-Redirect", link)
		c.HTML(http.StatusOK, "contact-mailto.html", gin.H{
			"message": tr.Get("contact.mailto"),
			"link":    link,
		})
		return
	}
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": tr.Get("contact.success"),
	})
}
