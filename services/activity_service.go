package services

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/mgo.v2/bson"

	mongo_client "valuationbackend/clients/mongo"
)

// LogActivity records an action in the activity collection. Logging is
// best-effort: a missing connection or a failed insert never affects
// the request that triggered it.
func LogActivity(action, company string, success bool) {
	if mongo_client.Client == nil {
		return
	}

	collection := mongo_client.Client.Database(os.Getenv("DATABASE")).Collection(os.Getenv("ACTIVITY_COLLECTION"))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := collection.InsertOne(ctx, bson.M{
		"action":    action,
		"company":   company,
		"success":   success,
		"timestamp": time.Now(),
	})
	if err != nil {
		zap.L().Error("Failed to log activity", zap.String("action", action), zap.Error(err))
		return
	}
	zap.L().Info("Activity logged", zap.String("action", action), zap.Bool("success", success))
}
