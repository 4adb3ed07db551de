package controllers

import (
	"fmt"
	"os"

	"tag-editor/internal/logger"
	"tag-editor/internal/models"
	"tag-editor/internal/services"
	"tag-editor/internal/views"
)

// MainController drives the caption editor: it owns the session, loads
// captions and images for the current pair and writes captions back.
// Every method runs on the UI goroutine.
type MainController struct {
	// Services
	captionService *services.CaptionService
	imageService   *services.ImageService

	// Models
	session *models.Session
	state   models.EditState

	// Views
	mainView *views.MainView
	viewer   *views.ImageViewer

	logger logger.Logger
	fatal  func(error)
}

func NewMainController(
	session *models.Session,
	captionService *services.CaptionService,
	imageService *services.ImageService,
	log logger.Logger,
) *MainController {
	mc := &MainController{
		captionService: captionService,
		imageService:   imageService,
		session:        session,
		logger:         log,
	}
	mc.fatal = mc.exit
	return mc
}

// SetMainView associates the editing window with this controller.
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view
	mc.setupViewEventHandlers()
}

// SetImageViewer sets the viewer used for the image of the current pair.
func (mc *MainController) SetImageViewer(viewer *views.ImageViewer) {
	mc.viewer = viewer
}

// SetFatalHandler replaces what happens on an unrecoverable I/O error.
// The default logs the error and exits with status 1.
func (mc *MainController) SetFatalHandler(handler func(error)) {
	mc.fatal = handler
}

func (mc *MainController) setupViewEventHandlers() {
	mc.mainView.SetNavigateHandler(mc.Navigate)
	mc.mainView.SetEditHandler(mc.Edit)
	mc.mainView.SetSaveHandler(mc.Save)
}

// Start shows the first pair.
func (mc *MainController) Start() error {
	if err := mc.loadCurrent(); err != nil {
		return err
	}

	mc.logger.Info("Controller", "editor started", map[string]interface{}{
		"pairs": mc.session.Len(),
		"first": mc.session.Current().TextName(),
	})
	return nil
}

// Navigate moves to the neighbouring pair, wrapping at both ends. Unsaved
// edits of the pair being left are dropped.
func (mc *MainController) Navigate(direction models.Direction) {
	if mc.state == models.Modified {
		mc.logger.Debug("Controller", "discarding unsaved caption", map[string]interface{}{
			"path": mc.session.Current().TextPath,
		})
	}

	pair := mc.session.Move(direction)
	mc.logger.Debug("Controller", "navigate", map[string]interface{}{
		"direction": direction.String(),
		"index":     mc.session.Index(),
		"caption":   pair.TextName(),
	})

	if err := mc.loadCurrent(); err != nil {
		mc.fatal(err)
		return
	}
	mc.mainView.ReleaseFocus()
}

// Edit marks the current caption as modified.
func (mc *MainController) Edit() {
	mc.setState(models.Modified)
}

// Save overwrites the current caption file with the editor content.
func (mc *MainController) Save() {
	pair := mc.session.Current()
	if err := mc.captionService.Save(pair, mc.mainView.Caption()); err != nil {
		mc.fatal(err)
		return
	}
	mc.setState(models.Clean)
}

func (mc *MainController) State() models.EditState {
	return mc.state
}

func (mc *MainController) Session() *models.Session {
	return mc.session
}

func (mc *MainController) setState(state models.EditState) {
	mc.state = state
	mc.mainView.SetEditState(state)
}

func (mc *MainController) loadCurrent() error {
	pair := mc.session.Current()

	text, err := mc.captionService.Load(pair)
	if err != nil {
		return fmt.Errorf("load %s: %w", pair.TextName(), err)
	}

	mc.mainView.SetCaption(pair.TextName(), text)
	mc.mainView.SetPosition(mc.session.Index(), mc.session.Len())
	mc.setState(models.Clean)
	mc.showImage(pair)
	return nil
}

// showImage puts the pair's image in the viewer. A missing or undecodable
// image leaves the viewer empty.
func (mc *MainController) showImage(pair models.Pair) {
	if mc.viewer == nil {
		return
	}

	mc.viewer.Open(pair.ImageName())
	defer mc.viewer.Show()

	data, err := mc.imageService.LoadImage(pair.ImagePath)
	if err != nil {
		mc.logger.Debug("Controller", "image not shown", map[string]interface{}{
			"path":  pair.ImagePath,
			"error": err.Error(),
		})
		return
	}

	width, height, scale := mc.viewer.Available()
	scaled := mc.imageService.ScaleToFit(data.Image, width, height)
	mc.viewer.Display(scaled, scale, data.Summary())
}

func (mc *MainController) exit(err error) {
	mc.logger.Error("Controller", err, map[string]interface{}{
		"caption": mc.session.Current().TextPath,
	})
	os.Exit(1)
}

// Shutdown closes the viewer window.
func (mc *MainController) Shutdown() {
	if mc.viewer != nil {
		mc.viewer.Close()
	}
	mc.logger.Info("Controller", "shutdown", map[string]interface{}{
		"unsaved": mc.state == models.Modified,
	})
}
