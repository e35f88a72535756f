package mongo_client

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"gopkg.in/mgo.v2/bson"
)

var (
	Client *mongo.Client
)

func init() {
	godotenv.Load()

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		zap.L().Warn("MONGO_URI not set, activity logging disabled")
		return
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(mongoURI).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(context.TODO(), opts)
	if err != nil {
		zap.L().Error("MongoDB connection failed, activity logging disabled", zap.Error(err))
		return
	}

	// Send a ping to confirm a successful connection
	pingCmd := bson.M{"ping": 1}
	if err := client.Database("admin").RunCommand(context.TODO(), pingCmd).Err(); err != nil {
		zap.L().Error("MongoDB ping failed, activity logging disabled", zap.Error(err))
		return
	}

	Client = client
	zap.L().Info("Connected to MongoDB")
}
