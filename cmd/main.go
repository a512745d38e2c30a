package main

import (
  "fmt"
  "os"

  "github.com/mindnest/mindnest-backend/internal/app"
)

func main() {
  application, err := app.New()
  if err != nil {
    fmt.Printf("Failed to start: %v\n", err)
    os.Exit(1)
  }
  defer application.Close()

  application.Log.Info("Server starting", "port", application.Cfg.Port)
  if err := application.Run(); err != nil {
    application.Log.Error("Server failed", "error", err)
  }
}
