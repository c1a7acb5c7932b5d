package store

import (
	"context"

	"github.com/bookverse/backend/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *MongoStore) InsertBook(ctx context.Context, book *models.Book) error {
	if book.ID == "" {
		book.ID = uuid.NewString()
	}
	_, err := s.books().InsertOne(ctx, book)
	return err
}

func (s *MongoStore) ListBooks(ctx context.Context, filter BookFilter) ([]models.Book, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"author": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}
	cur, err := s.books().Find(ctx, query, options.Find().SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	books := []models.Book{}
	if err := cur.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (s *MongoStore) BookByID(ctx context.Context, id string) (*models.Book, error) {
	var book models.Book
	err := s.books().FindOne(ctx, bson.M{"_id": id}).Decode(&book)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (s *MongoStore) UpdateBook(ctx context.Context, id string, patch *models.BookPatch) (*models.Book, error) {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Author != nil {
		set["author"] = *patch.Author
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Stock != nil {
		set["stock"] = *patch.Stock
	}
	if len(set) == 0 {
		return s.BookByID(ctx, id)
	}
	var book models.Book
	err := s.books().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&book)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (s *MongoStore) SetBookCover(ctx context.Context, id, coverKey, image string) error {
	res, err := s.books().UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"coverKey": coverKey, "image": image}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) DeleteBook(ctx context.Context, id string) error {
	res, err := s.books().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) CountBooks(ctx context.Context) (int64, error) {
	return s.books().CountDocuments(ctx, bson.M{})
}
