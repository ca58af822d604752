package serve

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"github.com/bgraf/phototrack/config"
	"github.com/bgraf/phototrack/data"
	"github.com/bgraf/phototrack/publish"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func RunServeCmd(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	store, err := data.NewStore(cfg)
	if err != nil {
		return fmt.Errorf("could not load store: %w", err)
	}

	manifest, err := store.Manifest()
	if err != nil {
		return err
	}

	r := NewRouter(store, manifest)

	log.Printf("serving on %s\n", cfg.ServeAddress)
	if err = r.Run(cfg.ServeAddress); err != nil {
		log.Fatal(err)
	}

	return nil
}

type serveAPI struct {
	store     *data.Store
	manifest  publish.Manifest
	resources *resourceMap
}

// NewRouter exposes the manifest, the located photos per day and the photo
// files of store.
func NewRouter(store *data.Store, manifest publish.Manifest) *gin.Engine {
	api := &serveAPI{
		store:     store,
		manifest:  manifest,
		resources: newResourceMap(),
	}

	for _, img := range store.Images {
		api.resources.Add(img.Name, img.Path)
	}

	// Published names resolve to the published copy, or to the original for
	// a manifest that has not been published yet.
	for _, day := range manifest.Days() {
		for _, e := range manifest[day] {
			src := e.Source
			if src == "" {
				src = filepath.Join(store.Config.PublishDirectory, e.Filename)
			}
			api.resources.Add(e.Filename, src)
		}
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/manifest", api.ServeManifest)
	r.GET("/days", api.ServeDays)
	r.GET("/days/:date", api.ServeDay)
	r.GET("/photos/:name", api.ServePhoto)

	return r
}

func (api *serveAPI) ServeManifest(c *gin.Context) {
	c.JSON(http.StatusOK, api.manifest)
}

func (api *serveAPI) ServePhoto(c *gin.Context) {
	resourcePath, ok := api.resources.Path(c.Param("name"))
	if !ok {
		c.String(http.StatusNotFound, "not found")
		return
	}

	c.Status(http.StatusOK)
	c.File(resourcePath)
}
