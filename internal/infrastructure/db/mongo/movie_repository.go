package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nine-chairs/myflix-api/internal/core/domain"
)

const moviesCollection = "movies"

// MovieRepository reads the movie catalog. The catalog is maintained
// elsewhere; this service never writes to it.
type MovieRepository struct {
	coll *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{coll: db.Collection(moviesCollection)}
}

type movieDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Genre       genreDoc           `bson:"genre"`
	Director    directorDoc        `bson:"director"`
	ImagePath   string             `bson:"image_path,omitempty"`
	Featured    bool               `bson:"featured"`
}

type genreDoc struct {
	Name        string `bson:"name"`
	Description string `bson:"description"`
}

type directorDoc struct {
	Name  string `bson:"name"`
	Bio   string `bson:"bio"`
	Birth string `bson:"birth,omitempty"`
	Death string `bson:"death,omitempty"`
}

func (d *movieDoc) toDomain() *domain.Movie {
	return &domain.Movie{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Genre:       domain.Genre{Name: d.Genre.Name, Description: d.Genre.Description},
		Director: domain.Director{
			Name:  d.Director.Name,
			Bio:   d.Director.Bio,
			Birth: d.Director.Birth,
			Death: d.Director.Death,
		},
		ImagePath: d.ImagePath,
		Featured:  d.Featured,
	}
}

func (r *MovieRepository) FindAll(ctx context.Context) ([]*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer cur.Close(ctx)

	var movies []*domain.Movie
	for cur.Next(ctx) {
		var doc movieDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode movie: %w", err)
		}
		movies = append(movies, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

func (r *MovieRepository) FindByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	return r.findOne(ctx, bson.M{"title": title})
}

func (r *MovieRepository) FindByGenreName(ctx context.Context, name string) (*domain.Movie, error) {
	return r.findOne(ctx, bson.M{"genre.name": name})
}

func (r *MovieRepository) FindByDirectorName(ctx context.Context, name string) (*domain.Movie, error) {
	return r.findOne(ctx, bson.M{"director.name": name})
}

func (r *MovieRepository) findOne(ctx context.Context, filter bson.M) (*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc movieDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("find movie: %w", err)
	}
	return doc.toDomain(), nil
}
